package jobs

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/uid"
)

func newReminderFixture(t *testing.T) (*ReminderScheduler, *gorm.DB) {
	t.Helper()
	uid.Init(1)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	// One connection only: every pooled connection would otherwise get its
	// own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.Compliance{}, &entity.Profile{}, &entity.Notification{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	scheduler := NewReminderScheduler(
		repository.NewComplianceRepository(db),
		repository.NewProfileRepository(db),
		repository.NewNotificationRepository(db),
	)
	return scheduler, db
}

func seedMember(t *testing.T, db *gorm.DB, companyID int64, prefs entity.NotificationPrefs) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:        uid.Generate(),
		SubUUID:   "sub-" + time.Now().String(),
		CompanyID: &companyID,
		Name:      "Member",
		Email:     "m" + time.Now().String() + "@example.com",
		Role:      entity.RoleOwner,
		Prefs:     prefs,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

func seedDue(t *testing.T, db *gorm.DB, companyID int64, dueDate string, status entity.ComplianceStatus) *entity.Compliance {
	t.Helper()

	compliance := &entity.Compliance{
		ID:             uid.Generate(),
		CompanyID:      companyID,
		Name:           "GST Monthly Return (GSTR-1 & GSTR-3B)",
		RegulatoryBody: entity.BodyCBIC,
		Type:           entity.TypeTax,
		Frequency:      entity.FrequencyMonthly,
		Priority:       entity.PriorityHigh,
		NextDueDate:    dueDate,
		Status:         status,
		IsActive:       true,
	}
	if err := db.Create(compliance).Error; err != nil {
		t.Fatalf("failed to seed compliance: %v", err)
	}
	return compliance
}

func inDays(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(utils.DateLayout)
}

func TestReminderFiresOnLeadDay(t *testing.T) {
	scheduler, db := newReminderFixture(t)
	member := seedMember(t, db, 100, entity.DefaultNotificationPrefs())
	seedDue(t, db, 100, inDays(3), entity.ComplianceStatusPending)

	scheduler.Scan()

	var notifs []*entity.Notification
	if err := db.Where("profile_id = ?", member.ID).Find(&notifs).Error; err != nil {
		t.Fatalf("failed to fetch notifications: %v", err)
	}
	if len(notifs) != 1 || notifs[0].Type != entity.NotifDeadlineReminder {
		t.Fatalf("expected one deadline reminder, got %+v", notifs)
	}

	// A second pass over the same due date must not raise it again.
	scheduler.Scan()
	var count int64
	if err := db.Model(&entity.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 1 {
		t.Fatalf("reminder was duplicated: %d notifications", count)
	}
}

func TestReminderSkipsOffLeadDays(t *testing.T) {
	scheduler, db := newReminderFixture(t)
	seedMember(t, db, 100, entity.DefaultNotificationPrefs())
	seedDue(t, db, 100, inDays(5), entity.ComplianceStatusPending)

	scheduler.Scan()

	var count int64
	if err := db.Model(&entity.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 0 {
		t.Fatalf("due in 5 days is not a lead day of [7,3,1], got %d notifications", count)
	}
}

func TestOverdueRaisesAlertWithoutMutatingStatus(t *testing.T) {
	scheduler, db := newReminderFixture(t)
	member := seedMember(t, db, 100, entity.DefaultNotificationPrefs())
	compliance := seedDue(t, db, 100, inDays(-2), entity.ComplianceStatusPending)

	scheduler.Scan()

	var notifs []*entity.Notification
	if err := db.Where("profile_id = ?", member.ID).Find(&notifs).Error; err != nil {
		t.Fatalf("failed to fetch notifications: %v", err)
	}
	if len(notifs) != 1 || notifs[0].Type != entity.NotifOverdueAlert {
		t.Fatalf("expected one overdue alert, got %+v", notifs)
	}

	var stored entity.Compliance
	if err := db.First(&stored, compliance.ID).Error; err != nil {
		t.Fatalf("failed to refetch compliance: %v", err)
	}
	if stored.Status != entity.ComplianceStatusPending {
		t.Fatalf("scheduler must never persist a status change, got %s", stored.Status)
	}
}

func TestReminderHonorsInAppOptOut(t *testing.T) {
	scheduler, db := newReminderFixture(t)
	prefs := entity.DefaultNotificationPrefs()
	prefs.InApp = false
	seedMember(t, db, 100, prefs)
	seedDue(t, db, 100, inDays(1), entity.ComplianceStatusPending)

	scheduler.Scan()

	var count int64
	if err := db.Model(&entity.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 0 {
		t.Fatalf("opted-out member must not be notified, got %d", count)
	}
}

func TestCompletedComplianceIsIgnored(t *testing.T) {
	scheduler, db := newReminderFixture(t)
	seedMember(t, db, 100, entity.DefaultNotificationPrefs())
	seedDue(t, db, 100, inDays(-2), entity.ComplianceStatusCompleted)

	scheduler.Scan()

	var count int64
	if err := db.Model(&entity.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 0 {
		t.Fatalf("completed compliances are never reminded, got %d", count)
	}
}
