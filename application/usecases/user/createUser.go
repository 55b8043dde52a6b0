package user_usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/repository"
	"facegate.io/entities"
	"facegate.io/infrastructure/cryptography"
	"facegate.io/infrastructure/logger"
	messagequeue "facegate.io/infrastructure/message_queue"
	queue_tasks "facegate.io/infrastructure/message_queue/tasks"
	mq_types "facegate.io/infrastructure/message_queue/types"
)

func CreateUserUseCase(ctx any, payload *dto.CreateUserDTO, deviceID string, userAgent string) (*entities.User, error) {
	payload.Email = strings.ToLower(payload.Email)
	userRepo := repository.UserRepo()
	exists, err := userRepo.CountDocs(map[string]any{
		"email": payload.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil, deviceID)
		return nil, err
	}
	if exists != 0 {
		apperrors.EntityAlreadyExistsError(ctx, "An account with this email already exists", deviceID)
		return nil, errors.New("user with email already exists")
	}

	hashedPassword, err := cryptography.CryptoHasher.HashString(payload.Password, nil)
	if err != nil {
		logger.Error("an error occured while hashing user password", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, err
	}

	user, err := userRepo.CreateOne(context.TODO(), entities.User{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  string(hashedPassword),
		UserAgent: userAgent,
		Devices: []entities.Device{{
			ID:        payload.DeviceID,
			Name:      payload.DeviceName,
			LastLogin: time.Now(),
		}},
	})
	if err != nil {
		logger.Error("could not create user", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, err
	}

	emailPayload, _ := json.Marshal(queue_tasks.EmailPayload{
		To:       user.Email,
		Subject:  "Welcome to Facegate",
		Template: "welcome",
		Opts:     map[string]any{"FirstName": user.FirstName},
	})
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleEmailDeliveryTaskName,
		Payload:  emailPayload,
		Priority: mq_types.Medium,
	})

	return user, nil
}
