package main

import (
	"strings"

	"kartela-backend/internal/admin"
	"kartela-backend/internal/auth"
	"kartela-backend/internal/config"
	"kartela-backend/internal/customer"
	"kartela-backend/internal/dashboard"
	"kartela-backend/internal/product"
	"kartela-backend/internal/report"
	"kartela-backend/internal/state"
	"kartela-backend/internal/stock"
	"kartela-backend/internal/store"
	"kartela-backend/internal/syncqueue"
	"kartela-backend/internal/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	db, err := store.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Veritabanı bağlantısı kurulamadı")
	}

	st := state.NewContainer(db)
	st.Load()
	if loadErr := st.LoadError(); loadErr != nil {
		logrus.WithError(loadErr).Warn("Veriler yüklenemedi, boş koleksiyonlarla devam ediliyor")
	}

	queue := syncqueue.New(db, syncqueue.LogSender{Delay: cfg.SyncDelay})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logrus.WithError(err).Error("Beklenmeyen hata")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Müşteriler
	protected.Get("/customers", customer.ListCustomersHandler(st))
	protected.Post("/customers", customer.CreateCustomerHandler(st, queue))
	protected.Post("/customers/bulk", customer.BulkAddHandler(st))
	protected.Get("/customers/export/csv", customer.ExportCSVHandler(st))
	protected.Post("/customers/import/csv", customer.ImportCSVHandler(st))
	protected.Get("/customers/template/csv", customer.TemplateCSVHandler())
	protected.Get("/customers/:id", customer.GetCustomerHandler(st))
	protected.Put("/customers/:id", customer.UpdateCustomerHandler(st, queue))
	protected.Delete("/customers/:id", customer.DeleteCustomerHandler(st, queue))
	protected.Get("/customers/:id/transactions", customer.CustomerTransactionsHandler(st))

	// Kartelalar
	protected.Get("/products", product.ListProductsHandler(st))
	protected.Post("/products", product.CreateProductHandler(st, queue))
	protected.Post("/products/bulk", product.BulkAddHandler(st))
	protected.Get("/products/export/csv", product.ExportCSVHandler(st))
	protected.Post("/products/import/csv", product.ImportCSVHandler(st))
	protected.Get("/products/template/csv", product.TemplateCSVHandler())
	protected.Get("/products/:id", product.GetProductHandler(st))
	protected.Put("/products/:id", product.UpdateProductHandler(st, queue))
	protected.Delete("/products/:id", product.DeleteProductHandler(st, queue))
	protected.Get("/products/:id/transactions", product.ProductTransactionsHandler(st))

	// İşlemler
	protected.Get("/transactions", transaction.ListTransactionsHandler(st))
	protected.Post("/transactions", transaction.CreateTransactionHandler(st, queue))
	protected.Put("/transactions/:id", transaction.UpdateTransactionHandler(st, queue))
	protected.Delete("/transactions/:id", transaction.DeleteTransactionHandler(st, queue))

	// Stok
	protected.Get("/stock/items", stock.ListStockItemsHandler(st))
	protected.Post("/stock/items", stock.CreateStockItemHandler(st, queue))
	protected.Post("/stock/items/bulk", stock.BulkAddStockItemsHandler(st, queue))
	protected.Put("/stock/items/:id", stock.UpdateStockItemHandler(st, queue))
	protected.Delete("/stock/items/:id", stock.DeleteStockItemHandler(st, queue))
	protected.Post("/stock/adjust", stock.AdjustStockHandler(st))
	protected.Get("/stock/movements", stock.ListMovementsHandler(st))

	// Dashboard
	protected.Get("/dashboard/stats", dashboard.StatsHandler(st))

	// Raporlar
	protected.Get("/reports", report.ReportHandler(st))
	protected.Get("/reports/export", report.ExportHandler(st))

	// Ayarlar ve yedekleme
	protected.Get("/settings", admin.GetSettingsHandler(st))
	protected.Put("/settings", admin.UpdateSettingsHandler(st))
	protected.Get("/backup", admin.DownloadBackupHandler(st))
	protected.Post("/backup/restore", admin.RestoreBackupHandler(st))
	protected.Delete("/data", admin.ClearDataHandler(st))

	// Çevrimdışı senkron kuyruğu
	protected.Post("/sync", syncqueue.SyncHandler(queue))
	protected.Get("/sync/status", syncqueue.QueueStatusHandler(queue))
	protected.Delete("/sync/queue", syncqueue.ClearQueueHandler(queue))

	logrus.WithField("port", cfg.HTTPPort).Info("Sunucu çalışıyor")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}
