package models

import "time"

// SystemLog - запись журнала действий командного центра
type SystemLog struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

type LogFilter struct {
	Level    string
	Category string
	Skip     int
	Limit    int
}
