package models

type SystemSetting struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

const SettingWaitTime = "wait_time"
