package service

import (
	"context"
	"testing"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportServiceGenerateArchived(t *testing.T) {
	ctx := context.Background()
	archive := storage.NewMemoryArchive()
	env := newTestEnv(t, nil, archive)
	user := env.user(t)

	env.log(t, user.ID, model.ActivityCarTravel, 600)
	env.log(t, user.ID, "unicorn_rides", 3)

	report, err := env.reports.Generate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Total emissions for user "+user.ID+": 126.0 kg CO2e", report.Summary)
	assert.Equal(t, storage.ReportKey(user.ID, report.ID), report.ArchiveKey)

	doc, err := archive.Get(ctx, report.ArchiveKey)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "total_kg: 126.0")
	assert.Contains(t, string(doc), "| Car Travel | 1 | 600.0 | 0.21 | 126.0 |")
	assert.Contains(t, string(doc), "| Unicorn Rides | 1 | 3.0 | n/a | 0.0 |")

	html, err := env.reports.HTML(ctx, user.ID, report.ID)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<td>Car Travel</td>")
	assert.Contains(t, string(html), report.Summary)

	// The stored report does not follow later activity.
	env.log(t, user.ID, model.ActivityCarTravel, 600)
	stored, err := env.reports.ByID(user.ID, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Summary, stored.Summary)
}

func TestReportServiceGenerateWithoutArchive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)
	user := env.user(t)

	report, err := env.reports.Generate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Total emissions for user "+user.ID+": 0.0 kg CO2e", report.Summary)
	assert.Empty(t, report.ArchiveKey)

	html, err := env.reports.HTML(ctx, user.ID, report.ID)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1 id=\"emissions-report\">Emissions report</h1>")
	assert.Contains(t, string(html), report.Summary)

	reports, err := env.reports.Reports(user.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	_, err = env.reports.HTML(ctx, user.ID, "missing")
	assert.ErrorIs(t, err, repository.ErrReportNotFound)
}
