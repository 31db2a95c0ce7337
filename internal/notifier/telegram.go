package notifier

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/job-board/internal/config"
	"github.com/maxaizer/job-board/internal/events"
	"github.com/maxaizer/job-board/internal/logger"
	log "github.com/sirupsen/logrus"
)

// Telegram announces board activity to a channel. It only listens to the
// event bus; API callers never wait on it and never see its failures.
type Telegram struct {
	api    *botApi.BotAPI
	bus    EventBus.Bus
	chatID int64
}

func NewTelegram(cfg config.NotifierConfig, bus EventBus.Bus) (*Telegram, error) {

	api, err := botApi.NewBotAPI(cfg.TgToken)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	t := &Telegram{api: api, bus: bus, chatID: cfg.TgChatID}

	if err = bus.SubscribeAsync(events.JobPostedTopic, t.onJobPosted, false); err != nil {
		return nil, err
	}
	if err = bus.SubscribeAsync(events.ApplicationReceivedTopic, t.onApplicationReceived, false); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Telegram) Close() {
	t.bus.Unsubscribe(events.JobPostedTopic, t.onJobPosted)
	t.bus.Unsubscribe(events.ApplicationReceivedTopic, t.onApplicationReceived)
}

func (t *Telegram) onJobPosted(event events.JobPosted) {

	text := fmt.Sprintf("New job posted: %v", event.Job.Title)
	if event.CompanyName != "" {
		text = fmt.Sprintf("New job posted: %v at %v", event.Job.Title, event.CompanyName)
	}
	if event.Job.Location != "" {
		text += fmt.Sprintf(" (%v)", event.Job.Location)
	}

	t.send(botApi.NewMessage(t.chatID, text))
}

func (t *Telegram) onApplicationReceived(event events.ApplicationReceived) {
	t.send(botApi.NewMessage(t.chatID,
		fmt.Sprintf("New application for \"%v\" from %v", event.JobTitle, event.Application.ApplicantName)))
}

func (t *Telegram) send(msg botApi.MessageConfig) {
	if _, err := t.api.Send(msg); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).Errorf("error occured while sending message: %v", err)
	}
}
