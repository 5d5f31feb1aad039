package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application configuration
	AppPort string `yaml:"APP_PORT"`
	AppEnv  string `yaml:"APP_ENV"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Google Drive backup location
	BackupFolderName string `yaml:"BACKUP_FOLDER_NAME"`
	BackupFileName   string `yaml:"BACKUP_FILE_NAME"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	// Defaults matching the backup location used by the Bakify Android app
	if config.BackupFolderName == "" {
		config.BackupFolderName = "Bakify Backups"
	}
	if config.BackupFileName == "" {
		config.BackupFileName = "bakify_backup.json"
	}
	if config.AppPort == "" {
		config.AppPort = "8080"
	}

	// Keep JWT_SECRET reachable via os.Getenv as well
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "JWT_SECRET":
		return config.JWTSecret
	case "BACKUP_FOLDER_NAME":
		return config.BackupFolderName
	case "BACKUP_FILE_NAME":
		return config.BackupFileName
	default:
		return ""
	}
}
