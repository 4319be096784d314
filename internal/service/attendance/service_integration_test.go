package attendance

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/database"
	"github.com/klbeton/pointage-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func integrationDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
		require.NoError(t, database.Migrate(context.Background(), testDB))
	}
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"attendance_records", "advances", "users", "employees"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, matricule string) employee.Employee {
	t.Helper()
	repo := postgresql.NewEmployeeRepository(db)
	emp, err := repo.Create(ctx, employee.Employee{
		ID:               "00000000-0000-0000-0000-00000000000" + matricule[len(matricule)-1:],
		Matricule:        matricule,
		FirstName:        "Sami",
		LastName:         "Trabelsi",
		HireDate:         time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		BaseMonthlyPay:   decimal.NewFromInt(780),
		LeaveBalanceDays: 18,
		SickBalanceDays:  10,
		Status:           employee.StatusActive,
	})
	require.NoError(t, err)
	return emp
}

func newIntegrationService(db *database.DB) attendance.AttendanceService {
	return NewAttendanceService(
		db,
		postgresql.NewAttendanceRepository(db),
		postgresql.NewEmployeeRepository(db),
		calendar.NewTunisiaClassifier(),
		payroll.DefaultPolicy(),
	)
}

func TestIngestDailySheet_Integration(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	t.Run("persists a normalized sheet and charges balances", func(t *testing.T) {
		truncateTables(t, ctx, db)
		emp1 := createTestEmployee(t, ctx, db, "KL-0001")
		emp2 := createTestEmployee(t, ctx, db, "KL-0002")
		svc := newIntegrationService(db)

		results, err := svc.IngestDailySheet(ctx, attendance.DailySheetRequest{
			Date: "2025-06-02",
			Entries: []attendance.RawEntry{
				{EmployeeID: emp1.ID, Status: "PRESENT"},
				{EmployeeID: emp2.ID, Status: "ON_LEAVE"},
			},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "PRESENT", results[0].Status)
		assert.Equal(t, 1.0, results[0].WorkedUnits)

		empRepo := postgresql.NewEmployeeRepository(db)
		updated, err := empRepo.GetByID(ctx, emp2.ID)
		require.NoError(t, err)
		assert.Equal(t, 17.0, updated.LeaveBalanceDays)
	})

	t.Run("re-ingesting a corrected sheet does not double-charge", func(t *testing.T) {
		truncateTables(t, ctx, db)
		emp := createTestEmployee(t, ctx, db, "KL-0001")
		svc := newIntegrationService(db)

		sheet := attendance.DailySheetRequest{
			Date:    "2025-06-02",
			Entries: []attendance.RawEntry{{EmployeeID: emp.ID, Status: "ON_LEAVE"}},
		}
		_, err := svc.IngestDailySheet(ctx, sheet)
		require.NoError(t, err)
		_, err = svc.IngestDailySheet(ctx, sheet)
		require.NoError(t, err)

		empRepo := postgresql.NewEmployeeRepository(db)
		updated, err := empRepo.GetByID(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, 17.0, updated.LeaveBalanceDays)

		// Correcting the day to PRESENT refunds the leave day.
		sheet.Entries[0].Status = "PRESENT"
		_, err = svc.IngestDailySheet(ctx, sheet)
		require.NoError(t, err)

		updated, err = empRepo.GetByID(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, 18.0, updated.LeaveBalanceDays)

		records, err := postgresql.NewAttendanceRepository(db).ListByDate(ctx, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, attendance.StatusPresent, records[0].Status)
	})

	t.Run("unknown employee rolls back the whole sheet", func(t *testing.T) {
		truncateTables(t, ctx, db)
		emp := createTestEmployee(t, ctx, db, "KL-0001")
		svc := newIntegrationService(db)

		_, err := svc.IngestDailySheet(ctx, attendance.DailySheetRequest{
			Date: "2025-06-02",
			Entries: []attendance.RawEntry{
				{EmployeeID: emp.ID, Status: "ON_LEAVE"},
				{EmployeeID: "11111111-1111-1111-1111-111111111111", Status: "PRESENT"},
			},
		})
		require.ErrorIs(t, err, employee.ErrEmployeeNotFound)

		records, err := postgresql.NewAttendanceRepository(db).ListByDate(ctx, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, records)

		// Balance decrement rolled back with the upserts.
		updated, err := postgresql.NewEmployeeRepository(db).GetByID(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, 18.0, updated.LeaveBalanceDays)
	})
}
