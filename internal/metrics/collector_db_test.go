package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"vanifolio/internal/models"
	dbtest "vanifolio/internal/testutil"
)

func TestLookupCollector_Postgres(t *testing.T) {
	database, cleanup := dbtest.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := database.IncrementLookup(ctx, "contact", models.OutcomeMatched); err != nil {
			t.Fatalf("IncrementLookup() error = %v", err)
		}
	}

	c := &LookupCollector{store: database, logger: zap.NewNop()}

	expected := `
# HELP vanifolio_faq_lookups_total Total FAQ lookup count by top entry and outcome
# TYPE vanifolio_faq_lookups_total counter
vanifolio_faq_lookups_total{entry="contact",outcome="matched"} 2
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collector output: %v", err)
	}
}
