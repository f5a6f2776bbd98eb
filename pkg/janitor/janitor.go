package janitor

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Janitor запускает периодические служебные задачи (очистка кэшей, лимитеров)
// Жизненный цикл явный: задачи регистрируются через Every, затем Start / Stop
type Janitor struct {
	scheduler gocron.Scheduler
	logger    Logger
}

// New создает janitor с собственным планировщиком
func New(logger Logger) (*Janitor, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("janitor: create scheduler: %w", err)
	}
	return &Janitor{scheduler: s, logger: logger}, nil
}

// Every регистрирует задачу, выполняемую каждые interval
// Если предыдущий запуск ещё не завершился, следующий пропускается
func (j *Janitor) Every(name string, interval time.Duration, task func()) error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("janitor: register job %q: %w", name, err)
	}
	j.logger.Info("Janitor: job %q registered, interval=%s", name, interval)
	return nil
}

// Start запускает планировщик
func (j *Janitor) Start() {
	j.scheduler.Start()
	j.logger.Info("Janitor: started with %d jobs", len(j.scheduler.Jobs()))
}

// Stop останавливает планировщик и дожидается завершения задач
func (j *Janitor) Stop() error {
	if err := j.scheduler.Shutdown(); err != nil {
		j.logger.Error("Janitor: shutdown failed: %v", err)
		return fmt.Errorf("janitor: shutdown: %w", err)
	}
	j.logger.Info("Janitor: stopped")
	return nil
}
