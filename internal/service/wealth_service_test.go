package service_test

import (
	"context"
	"testing"

	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestWealthService_Series(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestWealthService(t, db)
	user := testutil.NewUser().Build(t, db)

	testutil.NewWealthRecord(user.ID, 2023).
		WithMonth(1, "1,000.50").
		WithMonth(2, "not a number").
		WithMonth(12, "2000").
		Build(t, db)
	testutil.NewWealthRecord(user.ID, 2024).
		WithMonth(1, " 2500 ").
		Build(t, db)

	points, err := svc.Series(ctx, user.ID)
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("Expected 4 points (empty months skipped), got %d", len(points))
	}

	// thousands separators stripped
	if points[0].Year != 2023 || points[0].Month != 1 || !almostEqual(points[0].Total, 1000.50) {
		t.Errorf("Unexpected first point: %+v", points[0])
	}
	// unparseable cells count as zero but keep their slot
	if points[1].Month != 2 || points[1].Total != 0 {
		t.Errorf("Expected bad cell to be zero, got %+v", points[1])
	}
	if points[2].Month != 12 || !almostEqual(points[2].Total, 2000) {
		t.Errorf("Unexpected December point: %+v", points[2])
	}
	if points[3].Year != 2024 || !almostEqual(points[3].Total, 2500) {
		t.Errorf("Unexpected 2024 point: %+v", points[3])
	}
}

func TestWealthService_Years(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestWealthService(t, db)
	user := testutil.NewUser().Build(t, db)
	other := testutil.NewUser().Build(t, db)

	testutil.NewWealthRecord(user.ID, 2022).Build(t, db)
	testutil.NewWealthRecord(user.ID, 2024).Build(t, db)
	testutil.NewWealthRecord(other.ID, 1999).Build(t, db)

	years, err := svc.Years(ctx, user.ID)
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}

	if len(years) != 2 || years[0] != 2024 || years[1] != 2022 {
		t.Errorf("Expected [2024 2022], got %v", years)
	}
}

func TestWealthService_Delete(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestWealthService(t, db)
	user := testutil.NewUser().Build(t, db)
	other := testutil.NewUser().Build(t, db)

	mine := testutil.NewWealthRecord(user.ID, 2023).Build(t, db)
	theirs := testutil.NewWealthRecord(other.ID, 2023).Build(t, db)

	// unknown IDs and foreign records are skipped silently
	err := svc.Delete(ctx, user.ID, []string{mine.ID, theirs.ID, testutil.MakeID()})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	testutil.AssertRowCount(t, db, "wealth_data", 1)
}
