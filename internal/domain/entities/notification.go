package entities

// SoundMode representa o modo de som das notificações.
// Internamente é um enum string; na API é exposto como boolean
// (PADRAO = true, SILENCIOSO = false).
type SoundMode string

const (
	SoundModeDefault SoundMode = "PADRAO"
	SoundModeSilent  SoundMode = "SILENCIOSO"
)

// Bool converte o modo de som para a representação externa
func (s SoundMode) Bool() bool {
	return s == SoundModeDefault
}

// SoundModeFromBool converte a representação externa para o enum interno
func SoundModeFromBool(b bool) SoundMode {
	if b {
		return SoundModeDefault
	}
	return SoundModeSilent
}

// NotificationChannel é o canal de entrega; apenas PUSH é usado
const NotificationChannel = "PUSH"

// NotificationConfig é a configuração de notificações de um usuário.
// Uma por usuário, por convenção da aplicação; criada sob demanda na
// primeira leitura.
type NotificationConfig struct {
	ID        int
	UserEmail string
	Channel   string
	Sound     SoundMode
	Enabled   bool
}

// DefaultNotificationConfig é a configuração criada na primeira leitura
func DefaultNotificationConfig(userEmail string) *NotificationConfig {
	return &NotificationConfig{
		UserEmail: userEmail,
		Channel:   NotificationChannel,
		Sound:     SoundModeDefault,
		Enabled:   true,
	}
}
