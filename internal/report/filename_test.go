package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	day := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	require.Equal(t, "تقرير_Spring_Survey_2026-03-15.pdf", Filename("Spring Survey!", day))
	require.Equal(t, "تقرير_استبيان_الرضا_2026-03-15.pdf", Filename("استبيان الرضا؟", day))
	require.Equal(t, "تقرير_survey_2026-03-15.pdf", Filename("!!!", day))
}
