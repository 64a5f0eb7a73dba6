package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/uid"
)

const ReminderInterval = 1 * time.Hour

type ComplianceScanner interface {
	FindAllActive() ([]*entity.Compliance, error)
}

type ProfileScanner interface {
	FindAllByCompany(companyID int64) ([]*entity.Profile, error)
}

type NotificationStore interface {
	ExistsSimilar(profileID int64, typ entity.NotificationType, complianceID int64, dueDate string) (bool, error)
	Save(notif *entity.Notification) error
}

// ReminderScheduler raises deadline reminders and overdue alerts for every
// member of a company, honoring each member's lead-day preferences. It only
// ever writes notifications; compliance rows are never touched.
type ReminderScheduler struct {
	complianceRepo ComplianceScanner
	profileRepo    ProfileScanner
	notifRepo      NotificationStore
}

func NewReminderScheduler(complianceRepo ComplianceScanner, profileRepo ProfileScanner, notifRepo NotificationStore) *ReminderScheduler {
	return &ReminderScheduler{
		complianceRepo: complianceRepo,
		profileRepo:    profileRepo,
		notifRepo:      notifRepo,
	}
}

func (r *ReminderScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(ReminderInterval)
	defer ticker.Stop()

	log.Info("Reminder scheduler cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping reminder scheduler...")
			return
		case <-ticker.C:
			r.Scan()
		}
	}
}

// Scan runs one pass over all active compliances. Exported so tests and the
// startup path can trigger it outside the ticker.
func (r *ReminderScheduler) Scan() {
	compliances, err := r.complianceRepo.FindAllActive()
	if err != nil {
		log.Errorf("Reminder: failed to fetch active compliances: %v", err)
		return
	}

	today := utils.Today()
	members := map[int64][]*entity.Profile{}

	for _, c := range compliances {
		if c.Status == entity.ComplianceStatusCompleted {
			continue
		}

		profiles, ok := members[c.CompanyID]
		if !ok {
			profiles, err = r.profileRepo.FindAllByCompany(c.CompanyID)
			if err != nil {
				log.Errorf("Reminder: failed to fetch members of company %d: %v", c.CompanyID, err)
				continue
			}
			members[c.CompanyID] = profiles
		}

		for _, p := range profiles {
			r.remind(c, p, today)
		}
	}
}

func (r *ReminderScheduler) remind(c *entity.Compliance, p *entity.Profile, today string) {
	if !p.Prefs.InApp {
		return
	}

	if c.NextDueDate < today {
		r.raise(p, c, entity.NotifOverdueAlert, "Compliance overdue",
			"\""+c.Name+"\" was due on "+c.NextDueDate)
		return
	}

	for _, lead := range p.Prefs.LeadDays {
		if remindDate(c.NextDueDate, lead) == today {
			r.raise(p, c, entity.NotifDeadlineReminder, "Upcoming deadline",
				"\""+c.Name+"\" is due on "+c.NextDueDate)
			return
		}
	}
}

func (r *ReminderScheduler) raise(p *entity.Profile, c *entity.Compliance, typ entity.NotificationType, title, message string) {
	exists, err := r.notifRepo.ExistsSimilar(p.ID, typ, c.ID, c.NextDueDate)
	if err != nil {
		log.Errorf("Reminder: failed to check notification history: %v", err)
		return
	}
	if exists {
		return
	}

	notif := &entity.Notification{
		ID:           uid.Generate(),
		ProfileID:    p.ID,
		Type:         typ,
		Title:        title,
		Message:      message,
		ComplianceID: &c.ID,
		DueDate:      c.NextDueDate,
		CreatedAt:    utils.NowUTC(),
	}
	if err = r.notifRepo.Save(notif); err != nil {
		log.Errorf("Reminder: failed to save notification for profile %d: %v", p.ID, err)
	}
}

// remindDate is the calendar date on which a reminder with the given lead
// time fires for a due date.
func remindDate(dueDate string, leadDays int) string {
	due, err := time.Parse(utils.DateLayout, dueDate)
	if err != nil {
		return ""
	}
	return due.AddDate(0, 0, -leadDays).Format(utils.DateLayout)
}
