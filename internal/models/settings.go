package models

import "time"

type AppSettings struct {
	CompanyName    string     `json:"companyName"`
	Theme          string     `json:"theme"`    // light / dark
	Language       string     `json:"language"` // tr / en
	AutoBackup     bool       `json:"autoBackup"`
	BackupInterval int        `json:"backupInterval"` // gün
	LastBackup     *time.Time `json:"lastBackup,omitempty"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		CompanyName:    "Kartela Yönetim Sistemi",
		Theme:          "light",
		Language:       "tr",
		AutoBackup:     true,
		BackupInterval: 7,
	}
}
