package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/internal/mock"
	"github.com/techsolutions/horabank/internal/service"
	"github.com/techsolutions/horabank/models"
)

func TestRefreshJob_SkipsTicksWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)

	creds.EXPECT().Token().Return("")
	gateway.EXPECT().OnUnauthorized(gomock.Any())
	// no fetch expectations: a tick without a token must not hit the network

	session := service.NewSessionStore(gateway, creds, mock.NewMockNotifier(ctrl), logger.Nop())
	domain := service.NewDomainStore(gateway, mock.NewMockNotifier(ctrl), logger.Nop())

	job := service.NewRefreshJob(session, domain, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	job.Run(ctx)
}

func TestRefreshJob_FetchesAllCollectionsWhenAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)

	creds.EXPECT().Token().Return("T1")
	gateway.EXPECT().OnUnauthorized(gomock.Any())

	session := service.NewSessionStore(gateway, creds, mock.NewMockNotifier(ctrl), logger.Nop())
	domain := service.NewDomainStore(gateway, mock.NewMockNotifier(ctrl), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticked := make(chan struct{})
	gateway.EXPECT().Tasks(gomock.Any()).Return([]models.Task{{ID: "t1"}}, nil).MinTimes(1)
	gateway.EXPECT().Users(gomock.Any()).Return([]models.DirectoryUser{{ID: "u1"}}, nil).MinTimes(1)
	gateway.EXPECT().HourBank(gomock.Any()).DoAndReturn(
		func(context.Context) (models.HourBank, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return models.HourBank{Plan: models.PlanBasic, Total: 20, Used: 5, Available: 15}, nil
		},
	).MinTimes(1)

	job := service.NewRefreshJob(session, domain, 5*time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run(ctx)
	}()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job never completed a tick")
	}

	cancel()
	<-done

	assert.NotEmpty(t, domain.Tasks())
	assert.NotEmpty(t, domain.Users())
	assert.NotNil(t, domain.HourBank())
}

func TestRefreshJob_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)

	creds.EXPECT().Token().Return("")
	gateway.EXPECT().OnUnauthorized(gomock.Any())

	session := service.NewSessionStore(gateway, creds, mock.NewMockNotifier(ctrl), logger.Nop())
	domain := service.NewDomainStore(gateway, mock.NewMockNotifier(ctrl), logger.Nop())

	job := service.NewRefreshJob(session, domain, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run(ctx)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job did not stop on cancel")
	}
}
