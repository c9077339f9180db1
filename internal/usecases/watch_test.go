package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/observability"
)

type fakeProfileRepo struct {
	alertProfiles []entities.Profile
	err           error
}

func (f *fakeProfileRepo) SaveProfile(p entities.Profile) error { return nil }
func (f *fakeProfileRepo) GetProfile(userID string) (entities.Profile, bool, error) {
	return entities.Profile{}, false, nil
}
func (f *fakeProfileRepo) ListAlertProfiles() ([]entities.Profile, error) {
	return f.alertProfiles, f.err
}
func (f *fakeProfileRepo) Close() error { return nil }

type fakeEvaluator struct {
	stoke map[string]int
	err   error
}

func (f *fakeEvaluator) ComputeStoke(ctx context.Context, req entities.StokeRequest) (entities.StokeReport, error) {
	if f.err != nil {
		return entities.StokeReport{}, f.err
	}
	score := f.stoke[req.UserID]
	return entities.StokeReport{
		Stoke:   score,
		Message: fmt.Sprintf("Stoke %d/100.", score),
	}, nil
}

type sentNotification struct {
	channel string
	target  string
}

type fakeNotifier struct {
	sent   []sentNotification
	smsErr error
}

func (f *fakeNotifier) SendSMS(ctx context.Context, to, message string) (string, error) {
	if f.smsErr != nil {
		return "", f.smsErr
	}
	f.sent = append(f.sent, sentNotification{channel: "sms", target: to})
	return "SM123", nil
}

func (f *fakeNotifier) SendEmail(ctx context.Context, to, subject, message string) (int, error) {
	f.sent = append(f.sent, sentNotification{channel: "email", target: to})
	return 202, nil
}

func (f *fakeNotifier) SendTelegram(ctx context.Context, chatID int64, message string) (int, error) {
	f.sent = append(f.sent, sentNotification{channel: "telegram", target: fmt.Sprint(chatID)})
	return 1, nil
}

func TestRunOnceNotifiesStokedRiders(t *testing.T) {
	repo := &fakeProfileRepo{alertProfiles: []entities.Profile{
		{UserID: "alice", Phone: "+4511111111", HomeLat: 55.66, HomeLon: 12.56, AlertsEnabled: true},
		{UserID: "bob", Email: "bob@example.com", HomeLat: 55.66, HomeLon: 12.56, AlertsEnabled: true},
		{UserID: "carol", TelegramChatID: 42, HomeLat: 55.66, HomeLon: 12.56, AlertsEnabled: true},
	}}
	evaluator := &fakeEvaluator{stoke: map[string]int{"alice": 75, "bob": 40, "carol": 90}}
	notifier := &fakeNotifier{}
	uc := NewWatchUseCase(repo, evaluator, notifier, 60, 6, observability.NewMetricsForTesting())

	if err := uc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	// bob at 40 stays quiet, alice goes by SMS, carol by Telegram
	if len(notifier.sent) != 2 {
		t.Fatalf("Expected 2 notifications, got %d: %+v", len(notifier.sent), notifier.sent)
	}
	if notifier.sent[0].channel != "sms" || notifier.sent[0].target != "+4511111111" {
		t.Errorf("Expected SMS to alice, got %+v", notifier.sent[0])
	}
	if notifier.sent[1].channel != "telegram" || notifier.sent[1].target != "42" {
		t.Errorf("Expected Telegram to carol, got %+v", notifier.sent[1])
	}
}

func TestRunOncePrefersSMSOverEmail(t *testing.T) {
	repo := &fakeProfileRepo{alertProfiles: []entities.Profile{
		{UserID: "dora", Phone: "+4522222222", Email: "dora@example.com", HomeLat: 55.66, HomeLon: 12.56},
	}}
	evaluator := &fakeEvaluator{stoke: map[string]int{"dora": 99}}
	notifier := &fakeNotifier{}
	uc := NewWatchUseCase(repo, evaluator, notifier, 60, 6, observability.NewMetricsForTesting())

	if err := uc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].channel != "sms" {
		t.Errorf("Expected a single SMS, got %+v", notifier.sent)
	}
}

func TestRunOnceSkipsProfilesWithoutHomeSpot(t *testing.T) {
	repo := &fakeProfileRepo{alertProfiles: []entities.Profile{
		{UserID: "erik", Phone: "+4533333333"},
	}}
	evaluator := &fakeEvaluator{stoke: map[string]int{"erik": 100}}
	notifier := &fakeNotifier{}
	uc := NewWatchUseCase(repo, evaluator, notifier, 60, 6, observability.NewMetricsForTesting())

	if err := uc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("Expected no notifications without a home spot, got %+v", notifier.sent)
	}
}

func TestRunOnceEmptySubscriberList(t *testing.T) {
	uc := NewWatchUseCase(&fakeProfileRepo{}, &fakeEvaluator{}, &fakeNotifier{}, 60, 6, observability.NewMetricsForTesting())
	if err := uc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
}

func TestRunOnceRepoErrorPropagates(t *testing.T) {
	repo := &fakeProfileRepo{err: fmt.Errorf("database is locked")}
	uc := NewWatchUseCase(repo, &fakeEvaluator{}, &fakeNotifier{}, 60, 6, observability.NewMetricsForTesting())
	if err := uc.RunOnce(context.Background()); err == nil {
		t.Error("Expected repository error to propagate, got nil")
	}
}

func TestRunOnceEvaluatorErrorSkipsRider(t *testing.T) {
	repo := &fakeProfileRepo{alertProfiles: []entities.Profile{
		{UserID: "frida", Phone: "+4544444444", HomeLat: 55.66, HomeLon: 12.56},
	}}
	evaluator := &fakeEvaluator{err: fmt.Errorf("weather service down")}
	notifier := &fakeNotifier{}
	uc := NewWatchUseCase(repo, evaluator, notifier, 60, 6, observability.NewMetricsForTesting())

	// A broken evaluation must not abort the whole sweep
	if err := uc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("Expected no notifications, got %+v", notifier.sent)
	}
}
