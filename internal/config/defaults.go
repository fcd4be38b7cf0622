// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the lowest-priority configuration source.
// Secrets (token sign key, SMTP password) have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-user-auth",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				URI:        "mongodb://localhost:27017",
				Database:   "users",
				Collection: "users",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			CriminalRecords: CriminalRecords{
				RequestTimeout:     5 * time.Second,
				BreakerMaxFailures: 5,
				BreakerOpenTimeout: 30 * time.Second,
			},
			Notification: Notification{
				Kind:           NotificationLog,
				RequestTimeout: 5 * time.Second,
				SMTPPort:       587,
				From:           "no-reply@localhost",
			},
		},
		Log: Log{
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
