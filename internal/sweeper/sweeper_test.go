package sweeper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/config"
)

func NewMock(t *testing.T) (*Service, *MockApurator, *MockPoolCloser) {
	ctrl := gomock.NewController(t)
	apurator := NewMockApurator(ctrl)
	closer := NewMockPoolCloser(ctrl)
	service := New(&config.Config{SweepSpec: "*/10 * * * *"}, apurator, closer)
	defer ctrl.Finish()
	return service, apurator, closer
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	service, _, _ := NewMock(t)
	service.spec = "not a cron spec"

	err := service.Start(context.Background())
	assert.Error(t, err)
}

func TestSweepClosesThenApurates(t *testing.T) {
	service, apurator, closer := NewMock(t)

	closer.EXPECT().CloseExpired(gomock.Any(), gomock.Any()).Return(2, nil)
	apurator.EXPECT().ApurateActivePools(gomock.Any()).Return(nil)

	service.sweep(context.Background())
}

func TestSweepContinuesPastCloseFailure(t *testing.T) {
	service, apurator, closer := NewMock(t)

	closer.EXPECT().CloseExpired(gomock.Any(), gomock.Any()).Return(0, assert.AnError)
	apurator.EXPECT().ApurateActivePools(gomock.Any()).Return(nil)

	service.sweep(context.Background())
}
