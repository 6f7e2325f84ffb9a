package models

import "browcam/db"

func Init() {
	db.Instance.AutoMigrate(&Capture{})
}
