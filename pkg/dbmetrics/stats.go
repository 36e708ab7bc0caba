package dbmetrics

import (
	"database/sql"
	"time"
)

// DefaultStatsInterval период обновления метрик пула соединений
const DefaultStatsInterval = 15 * time.Second

// StatsRecorder принимает снимок статистики пула соединений
type StatsRecorder interface {
	SetDBStats(stats sql.DBStats)
}

// Collector одновременно наблюдает запросы и статистику пула
type Collector interface {
	QueryObserver
	StatsRecorder
}

// WrapWithDefault оборачивает БД и запускает сбор статистики пула с периодом по умолчанию
// Сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, collector Collector, stopCh <-chan struct{}) *DB {
	go CollectStats(db, collector, DefaultStatsInterval, stopCh)
	return Wrap(db, collector)
}

// CollectStats периодически передает db.Stats() в recorder до закрытия stopCh
func CollectStats(db *sql.DB, recorder StatsRecorder, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	recorder.SetDBStats(db.Stats())
	for {
		select {
		case <-ticker.C:
			recorder.SetDBStats(db.Stats())
		case <-stopCh:
			return
		}
	}
}
