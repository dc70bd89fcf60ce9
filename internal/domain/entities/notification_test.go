package entities

import "testing"

func TestSoundMode(t *testing.T) {
	t.Run("PADRAO é exposto como true", func(t *testing.T) {
		if !SoundModeDefault.Bool() {
			t.Error("esperava true para PADRAO")
		}
	})

	t.Run("SILENCIOSO é exposto como false", func(t *testing.T) {
		if SoundModeSilent.Bool() {
			t.Error("esperava false para SILENCIOSO")
		}
	})

	t.Run("conversão de boolean para enum", func(t *testing.T) {
		if SoundModeFromBool(true) != SoundModeDefault {
			t.Errorf("esperava PADRAO, obteve %s", SoundModeFromBool(true))
		}
		if SoundModeFromBool(false) != SoundModeSilent {
			t.Errorf("esperava SILENCIOSO, obteve %s", SoundModeFromBool(false))
		}
	})
}

func TestDefaultNotificationConfig(t *testing.T) {
	config := DefaultNotificationConfig("ana@x.com")

	if config.Channel != NotificationChannel {
		t.Errorf("esperava canal PUSH, obteve %s", config.Channel)
	}
	if config.Sound != SoundModeDefault {
		t.Errorf("esperava som PADRAO, obteve %s", config.Sound)
	}
	if !config.Enabled {
		t.Error("esperava configuração habilitada por padrão")
	}
}
