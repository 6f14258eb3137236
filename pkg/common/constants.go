package common

const (
	RedisStreamStockEvents = "registry.stock.events"
)
