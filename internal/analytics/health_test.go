package analytics

import (
	"math"
	"testing"
)

func healthySnapshot() SnapshotFields {
	return SnapshotFields{
		CashEquivalents:  20_000_000,
		MonthlyExpenses:  4_000_000,
		ShortTermDebt:    5_000_000,
		Savings:          3_000_000,
		TotalIncome:      10_000_000,
		TotalDebt:        20_000_000,
		TotalAssets:      100_000_000,
		DebtPayment:      1_000_000,
		InvestmentAssets: 60_000_000,
	}
}

func TestComputeFinancialHealth(t *testing.T) {
	t.Run("all_healthy", func(t *testing.T) {
		report := ComputeFinancialHealth(healthySnapshot())

		if !report.AllHealthy() {
			t.Errorf("expected all metrics healthy, got %+v", report)
		}
		if math.Abs(report.Liquidity.Value-5.0) > 1e-9 {
			t.Errorf("expected liquidity 5.0, got %f", report.Liquidity.Value)
		}
		if math.Abs(report.CurrentRatio.Value-4.0) > 1e-9 {
			t.Errorf("expected current ratio 4.0, got %f", report.CurrentRatio.Value)
		}
		if math.Abs(report.SavingsRatio.Value-30) > 1e-9 {
			t.Errorf("expected savings ratio 30, got %f", report.SavingsRatio.Value)
		}
		if math.Abs(report.DebtRatio.Value-20) > 1e-9 {
			t.Errorf("expected debt ratio 20, got %f", report.DebtRatio.Value)
		}
		if math.Abs(report.DebtServiceRatio.Value-10) > 1e-9 {
			t.Errorf("expected debt service ratio 10, got %f", report.DebtServiceRatio.Value)
		}
		if math.Abs(report.SolvencyRatio.Value-80) > 1e-9 {
			t.Errorf("expected solvency ratio 80, got %f", report.SolvencyRatio.Value)
		}
		if math.Abs(report.InvestmentRatio.Value-60) > 1e-9 {
			t.Errorf("expected investment ratio 60, got %f", report.InvestmentRatio.Value)
		}
		if score := HealthScore(report); score != 100 {
			t.Errorf("expected score 100, got %f", score)
		}
	})

	t.Run("zero_snapshot_no_nan", func(t *testing.T) {
		report := ComputeFinancialHealth(SnapshotFields{})

		for i, m := range report.metrics() {
			if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
				t.Errorf("metric %d: expected finite value, got %f", i, m.Value)
			}
			if m.Value != 0 {
				t.Errorf("metric %d: expected 0 on empty snapshot, got %f", i, m.Value)
			}
		}
		// At value 0, the less-than rules still pass: debt, debt service.
		if !report.DebtRatio.IsHealthy || !report.DebtServiceRatio.IsHealthy {
			t.Error("expected zero debt ratios to classify healthy")
		}
		if report.Liquidity.IsHealthy || report.SavingsRatio.IsHealthy {
			t.Error("expected zero liquidity and savings to classify unhealthy")
		}
	})

	t.Run("boundaries", func(t *testing.T) {
		// Liquidity exactly 3 is healthy; the other thresholds are strict.
		f := healthySnapshot()
		f.CashEquivalents = 12_000_000 // 3 months of 4M expenses
		report := ComputeFinancialHealth(f)
		if !report.Liquidity.IsHealthy {
			t.Error("expected liquidity exactly 3 to be healthy")
		}

		f = healthySnapshot()
		f.Savings = 1_000_000 // exactly 10% of income
		report = ComputeFinancialHealth(f)
		if report.SavingsRatio.IsHealthy {
			t.Error("expected savings ratio exactly 10 to be unhealthy")
		}

		f = healthySnapshot()
		f.TotalDebt = 50_000_000 // exactly 50% of assets
		report = ComputeFinancialHealth(f)
		if report.DebtRatio.IsHealthy {
			t.Error("expected debt ratio exactly 50 to be unhealthy")
		}

		f = healthySnapshot()
		f.ShortTermDebt = 20_000_000 // current ratio exactly 1
		report = ComputeFinancialHealth(f)
		if report.CurrentRatio.IsHealthy {
			t.Error("expected current ratio exactly 1 to be unhealthy")
		}
	})

	t.Run("negative_net_worth", func(t *testing.T) {
		f := healthySnapshot()
		f.TotalDebt = 150_000_000
		report := ComputeFinancialHealth(f)

		if report.SolvencyRatio.Value >= 0 {
			t.Errorf("expected negative solvency, got %f", report.SolvencyRatio.Value)
		}
		if report.SolvencyRatio.IsHealthy {
			t.Error("expected negative solvency to be unhealthy")
		}
	})
}

func TestHealthScoreAndBand(t *testing.T) {
	tests := []struct {
		name    string
		healthy int
		score   float64
		band    ScoreBand
	}{
		{"all_seven", 7, 100, BandGreen},
		{"five_of_seven", 5, 5.0 / 7.0 * 100, BandGreen},
		{"four_of_seven", 4, 4.0 / 7.0 * 100, BandYellow},
		{"three_of_seven", 3, 3.0 / 7.0 * 100, BandYellow},
		{"two_of_seven", 2, 2.0 / 7.0 * 100, BandRed},
		{"none", 0, 0, BandRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var report HealthReport
			all := []*Metric{
				&report.Liquidity,
				&report.CurrentRatio,
				&report.SavingsRatio,
				&report.DebtRatio,
				&report.DebtServiceRatio,
				&report.SolvencyRatio,
				&report.InvestmentRatio,
			}
			for i := 0; i < tt.healthy; i++ {
				all[i].IsHealthy = true
			}

			score := HealthScore(report)
			if math.Abs(score-tt.score) > 1e-9 {
				t.Errorf("expected score %f, got %f", tt.score, score)
			}
			if band := Band(score); band != tt.band {
				t.Errorf("expected band %s, got %s", tt.band, band)
			}
		})
	}
}

func TestBandBoundaries(t *testing.T) {
	if Band(70) != BandYellow {
		t.Error("expected score 70 to be yellow")
	}
	if Band(70.1) != BandGreen {
		t.Error("expected score above 70 to be green")
	}
	if Band(40) != BandRed {
		t.Error("expected score 40 to be red")
	}
	if Band(40.1) != BandYellow {
		t.Error("expected score above 40 to be yellow")
	}
}
