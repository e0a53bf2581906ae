package usecases

import (
	"context"
	"time"

	"ispdesk/internal/application/session/dto"
	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/id"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// ConnectCommand is the login form. Username and Password are required for
// the credentials method, MACAddress for the mac method.
type ConnectCommand struct {
	SessionID  string `json:"-"`
	AuthMethod string `json:"auth_method" validate:"required,oneof=credentials mac"`
	RouterIP   string `json:"router_ip" validate:"required,min=7,ip"`
	Port       int    `json:"port" validate:"required,gte=1,lte=65535"`
	Username   string `json:"username" validate:"required_if=AuthMethod credentials,max=64"`
	Password   string `json:"password" validate:"required_if=AuthMethod credentials,max=128"`
	MACAddress string `json:"mac_address" validate:"required_if=AuthMethod mac,omitempty,macaddr"`
}

type ConnectResult struct {
	SessionID string
	Token     string
	ExpiresIn int64
	State     *dto.SessionStateDTO
}

type ConnectUseCase struct {
	connector gate.Connector
	store     gate.Store
	sealer    PasswordSealer
	tokens    TokenService
	timeout   time.Duration
	logger    logger.Interface
}

func NewConnectUseCase(
	connector gate.Connector,
	store gate.Store,
	sealer PasswordSealer,
	tokens TokenService,
	timeout time.Duration,
	logger logger.Interface,
) *ConnectUseCase {
	return &ConnectUseCase{
		connector: connector,
		store:     store,
		sealer:    sealer,
		tokens:    tokens,
		timeout:   timeout,
		logger:    logger,
	}
}

func (uc *ConnectUseCase) Execute(ctx context.Context, cmd ConnectCommand) (*ConnectResult, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing connect use case",
		"auth_method", cmd.AuthMethod,
		"router_ip", cmd.RouterIP,
		"port", cmd.Port,
	)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	method := gate.AuthMethod(cmd.AuthMethod)
	creds := gate.Credentials{
		RouterIP: cmd.RouterIP,
		Port:     cmd.Port,
	}
	if method == gate.AuthMethodCredentials {
		creds.Username = cmd.Username
		creds.Password = cmd.Password
	} else {
		creds.MACAddress = cmd.MACAddress
	}

	connectCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	session, err := uc.connector.Connect(connectCtx, method, creds)
	if err != nil {
		log.Warnw("device connection failed",
			"router_ip", cmd.RouterIP,
			"kind", gate.KindOf(err),
			"error", err,
		)
		return nil, mapConnectError(err)
	}

	if creds.Password != "" {
		sealed, err := uc.sealer.Seal(creds.Password)
		if err != nil {
			log.Errorw("failed to seal router password", "error", err)
			return nil, errors.NewInternalError("failed to store session")
		}
		creds.Password = sealed
	}

	sessionID := cmd.SessionID
	if sessionID == "" {
		sessionID = id.New()
	}

	state := gate.Connected(method, creds, deviceLabel(session), biztime.NowUTC())
	if err := uc.store.Save(ctx, sessionID, state); err != nil {
		log.Errorw("failed to save gate state", "error", err, "session_id", sessionID)
		return nil, errors.NewInternalError("failed to store session")
	}

	token, expiresIn, err := uc.tokens.Issue(sessionID)
	if err != nil {
		log.Errorw("failed to issue session token", "error", err, "session_id", sessionID)
		return nil, errors.NewInternalError("failed to issue session token")
	}

	log.Infow("gate connected", "session_id", sessionID, "device", state.Device)

	return &ConnectResult{
		SessionID: sessionID,
		Token:     token,
		ExpiresIn: expiresIn,
		State:     dto.ToSessionStateDTO(state),
	}, nil
}

func mapConnectError(err error) error {
	switch gate.KindOf(err) {
	case gate.ErrorKindAuth:
		return errors.NewDeviceAuthError("Authentication failed", "the device rejected the supplied credentials")
	case gate.ErrorKindTimeout:
		return errors.NewTimeoutError("Connection timed out", "the device did not answer in time")
	case gate.ErrorKindCanceled:
		return errors.NewTimeoutError("Connection cancelled", "the request was cancelled before the device answered")
	case gate.ErrorKindUnavailable:
		return errors.NewUnavailableError("Device temporarily unavailable", "too many failed attempts, try again shortly")
	default:
		return errors.NewDeviceUnreachableError("Device unreachable", "could not reach the device at the given address")
	}
}

func deviceLabel(s *gate.DeviceSession) string {
	if s == nil {
		return ""
	}
	if s.Identity != "" {
		return s.Identity
	}
	return s.Board
}
