package middlewares

import (
	"errors"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/interfaces"
	"facegate.io/infrastructure/useragent"
)

func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any]) (*interfaces.ApplicationContext[any], bool) {
	agent := ctx.GetHeader("User-Agent")
	if agent == "" {
		apperrors.ClientError(ctx.Ctx, "why your user-agent header no dey? You be criminal?🤨", []error{errors.New("user agent header missing")}, nil, ctx.GetHeader("X-Device-Id"))
		return nil, false
	}
	agentDetails := useragent.ParseUserAgent(agent)
	ctx.UserAgent = agent
	ctx.DeviceName = agentDetails.Name

	deviceID := ctx.GetHeader("X-Device-Id")
	if deviceID == "" {
		apperrors.MalformedHeader(ctx.Ctx, nil)
		return nil, false
	}
	ctx.DeviceID = deviceID
	return ctx, true
}
