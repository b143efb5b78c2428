package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"autoservice/internal/core/domain/model/part"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LogMode                string
	LowStockThreshold      string
	InventoryAuditSchedule string
	KafkaHost              string
	KafkaOrderChangedTopic string
	KafkaPartChangedTopic  string
	OtelTracesStdout       string
}

// PostgresDSN builds the connection string for gorm.io/driver/postgres.
func (c Config) PostgresDSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

// LowStockThresholdValue parses LOW_STOCK_THRESHOLD. An empty value selects
// part.DefaultLowStockThreshold.
func (c Config) LowStockThresholdValue() (int, error) {
	raw := strings.TrimSpace(c.LowStockThreshold)
	if raw == "" {
		return part.DefaultLowStockThreshold, nil
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("LOW_STOCK_THRESHOLD: %w", err)
	}
	return threshold, nil
}

// TracesToStdout reports whether spans should be exported to standard output.
func (c Config) TracesToStdout() bool {
	enabled, err := strconv.ParseBool(strings.TrimSpace(c.OtelTracesStdout))
	return err == nil && enabled
}
