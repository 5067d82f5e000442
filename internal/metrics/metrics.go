package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groveback_checkins_total",
		Help: "Number of check-in attempts, rewarded or not.",
	})

	RewardsGrantedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groveback_daily_rewards_granted_total",
		Help: "Number of daily check-in rewards actually granted.",
	})

	CoinsSpentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groveback_coins_spent_total",
		Help: "Total coins debited through purchases.",
	})

	ReportsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groveback_monthly_reports_generated_total",
		Help: "Number of monthly reports generated successfully.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
