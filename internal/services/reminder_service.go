package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/models"
)

type ReminderSender interface {
	Send(message string) error
}

type telegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func (sender *telegramSender) Send(message string) error {
	_, err := sender.bot.Send(tgbotapi.NewMessage(sender.chatID, message))
	return err
}

// ReminderService sweeps tracked owners once a day and dispatches
// upcoming-period, ovulation, fertile-window and PMS reminders computed
// from the latest record's derived fields. Delivery is best-effort;
// reminders are advisory, never transactional.
type ReminderService struct {
	cycles             *db.CycleRepository
	profiles           *db.ProfileRepository
	sender             ReminderSender
	enabled            bool
	periodReminderDays int
	fertilityReminder  bool
	location           *time.Location
	scheduler          *cron.Cron

	mu       sync.Mutex
	sentKeys map[string]time.Time
}

func NewReminderService(cycles *db.CycleRepository, profiles *db.ProfileRepository, location *time.Location) *ReminderService {
	if location == nil {
		location = time.Local
	}

	periodReminderDays := 2
	if raw := os.Getenv("SELENE_PERIOD_REMINDER_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			periodReminderDays = parsed
		}
	}

	fertilityReminder := true
	if raw := os.Getenv("SELENE_NOTIFY_FERTILITY"); raw != "" {
		fertilityReminder = raw == "1" || raw == "true" || raw == "TRUE"
	}

	var sender ReminderSender
	enabled := false
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatRaw := os.Getenv("TELEGRAM_CHAT_ID")
	if token != "" && chatRaw != "" {
		chatID, err := strconv.ParseInt(chatRaw, 10, 64)
		if err != nil {
			log.Printf("reminders: invalid TELEGRAM_CHAT_ID %q: %v", chatRaw, err)
		} else if bot, err := tgbotapi.NewBotAPI(token); err != nil {
			log.Printf("reminders: telegram init failed: %v", err)
		} else {
			sender = &telegramSender{bot: bot, chatID: chatID}
			enabled = true
		}
	}

	return &ReminderService{
		cycles:             cycles,
		profiles:           profiles,
		sender:             sender,
		enabled:            enabled,
		periodReminderDays: periodReminderDays,
		fertilityReminder:  fertilityReminder,
		location:           location,
		sentKeys:           make(map[string]time.Time),
	}
}

// Start schedules the daily sweep. It is a no-op when Telegram delivery is
// not configured.
func (service *ReminderService) Start(ctx context.Context) {
	if !service.enabled {
		return
	}

	service.scheduler = cron.New(cron.WithLocation(service.location))
	if _, err := service.scheduler.AddFunc("0 9 * * *", service.run); err != nil {
		log.Printf("reminders: schedule failed: %v", err)
		return
	}
	service.scheduler.Start()

	go func() {
		<-ctx.Done()
		service.scheduler.Stop()
	}()

	service.run()
}

func (service *ReminderService) run() {
	owners, err := service.profiles.ListTrackedOwners()
	if err != nil {
		log.Printf("reminders: fetch tracked owners failed: %v", err)
		return
	}

	today := DateAtLocation(time.Now(), service.location)
	for _, owner := range owners {
		records, err := service.cycles.ListRecentByOwner(owner.OwnerID, 1)
		if err != nil {
			log.Printf("reminders: fetch latest record failed for owner %s: %v", owner.OwnerID, err)
			continue
		}
		if len(records) == 0 {
			continue
		}

		messages := BuildReminderMessages(records[0], today, service.periodReminderDays, service.fertilityReminder)
		for _, message := range messages {
			key := fmt.Sprintf("%s:%s:%s", owner.OwnerID, message.Kind, today.Format("2006-01-02"))
			if !service.shouldSend(key, today) {
				continue
			}
			if err := service.sender.Send(message.Text); err != nil {
				log.Printf("reminders: send %s failed for owner %s: %v", message.Kind, owner.OwnerID, err)
			}
		}
	}
}

type ReminderMessage struct {
	Kind string
	Text string
}

// BuildReminderMessages derives which reminders fire on the given day from
// the latest record's predictions. Pure; the sweep supplies today.
func BuildReminderMessages(latest models.CycleRecord, today time.Time, periodReminderDays int, fertilityReminder bool) []ReminderMessage {
	messages := make([]ReminderMessage, 0, 4)
	today = dateOnly(today)

	nextStart := time.Time{}
	if latest.NextPeriodStartDate != nil {
		nextStart = dateOnly(*latest.NextPeriodStartDate)
	}
	if !nextStart.IsZero() && !nextStart.Before(today) {
		if periodReminderDays > 0 && daysBetween(today, nextStart) == periodReminderDays {
			messages = append(messages, ReminderMessage{
				Kind: "period_coming",
				Text: fmt.Sprintf("Your period is expected in %d day(s) on %s. Prepare supplies and plan accordingly.",
					periodReminderDays, nextStart.Format("Jan 2")),
			})
		}
		if sameDay(today, nextStart.AddDate(0, 0, -4)) {
			messages = append(messages, ReminderMessage{
				Kind: "pms_phase",
				Text: "You may experience PMS symptoms in the coming days. Practice self-care and be patient with yourself.",
			})
		}
	}

	if latest.StartDate.IsZero() {
		return messages
	}

	cycleLength := latest.TrustedCycleLength()
	ovulationDate := dateOnly(latest.StartDate).AddDate(0, 0, cycleLength/2)
	if sameDay(today, ovulationDate) {
		messages = append(messages, ReminderMessage{
			Kind: "ovulation",
			Text: "You are entering your ovulation window. Energy levels are typically highest during this phase.",
		})
	}
	if fertilityReminder && sameDay(today, ovulationDate.AddDate(0, 0, -3)) {
		messages = append(messages, ReminderMessage{
			Kind: "fertile_window",
			Text: "You are entering your fertile window. Be aware if planning or avoiding pregnancy.",
		})
	}

	return messages
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, alreadySent := service.sentKeys[key]; alreadySent {
		return false
	}
	service.sentKeys[key] = today

	cutoff := today.AddDate(0, 0, -7)
	for sentKey, sentDay := range service.sentKeys {
		if sentDay.Before(cutoff) {
			delete(service.sentKeys, sentKey)
		}
	}
	return true
}
