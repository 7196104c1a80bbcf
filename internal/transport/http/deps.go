package http

import (
	"context"

	"github.com/dive-demo-tour/api/internal/email"
	"github.com/dive-demo-tour/api/internal/infrastructure/dynamo"
	s3infra "github.com/dive-demo-tour/api/internal/infrastructure/s3"
)

// Mailer is the minimal interface the router requires from the email provider.
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	RegistrationRepo *dynamo.RegistrationRepo
	EventRepo        *dynamo.EventRepo
	BrandRepo        *dynamo.BrandRepo
	PartnerRepo      *dynamo.PartnerRepo
	ModuleRepo       *dynamo.ModuleRepo
	SettingsRepo     *dynamo.SettingsRepo
	S3Store          *s3infra.Store
	Mailer           Mailer
}
