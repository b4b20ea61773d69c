package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RegisterPoolMetrics публикует состояние пула. Вызывается один раз на процесс.
func RegisterPoolMetrics(pool *pgxpool.Pool) {
	gauge := func(name, help string, value func(*pgxpool.Stat) float64) {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			return value(pool.Stat())
		})
	}

	gauge("db_pool_total_conns", "Total number of connections in the pool", func(s *pgxpool.Stat) float64 {
		return float64(s.TotalConns())
	})
	gauge("db_pool_idle_conns", "Number of idle connections in the pool", func(s *pgxpool.Stat) float64 {
		return float64(s.IdleConns())
	})
	gauge("db_pool_acquired_conns", "Number of connections currently in use", func(s *pgxpool.Stat) float64 {
		return float64(s.AcquiredConns())
	})
	gauge("db_pool_max_conns", "Maximum size of the pool", func(s *pgxpool.Stat) float64 {
		return float64(s.MaxConns())
	})
}
