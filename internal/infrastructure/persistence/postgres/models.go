package postgres

import "time"

// Models GORM. Os nomes de tabelas e colunas são os do schema em
// produção. As unicidades "uma rotina ATIVA por usuário", "uma
// aderência positiva por item/dia", "uma ficha por usuário" e "uma
// configuração por usuário" são convenções da aplicação, sem constraint.

// UserModel é o model GORM para usuários (tabela usuario)
type UserModel struct {
	Email        string    `gorm:"column:email;type:varchar(255);primaryKey"`
	Password     string    `gorm:"column:senha;type:varchar(255);not null"`
	Name         *string   `gorm:"column:nome;type:varchar(100)"`
	Phone        *string   `gorm:"column:telefone;type:varchar(20)"`
	IsCompanion  bool      `gorm:"column:is_acompanhante;not null;default:false"`
	RegisteredAt time.Time `gorm:"column:data_cadastro;not null;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "usuario"
}

// MedicalSheetModel é o model GORM para fichas médicas (tabela ficha_medica)
type MedicalSheetModel struct {
	ID                   int       `gorm:"column:id_ficha;primaryKey;autoIncrement"`
	UserEmail            string    `gorm:"column:usuario_email;type:varchar(255);not null"`
	Allergies            *string   `gorm:"column:alergias;type:text"`
	ContinuousMedication *string   `gorm:"column:medicacao_uso_continuo;type:text"`
	Comorbidities        *string   `gorm:"column:comorbidade;type:text"`
	UpdatedAt            time.Time `gorm:"column:data_ultima_atualizacao;not null;autoUpdateTime"`
}

func (MedicalSheetModel) TableName() string {
	return "ficha_medica"
}

// RoutineModel é o model GORM para rotinas de cuidado (tabela rotina_cuidado)
type RoutineModel struct {
	ID        int        `gorm:"column:id_rotina;primaryKey;autoIncrement"`
	UserEmail string     `gorm:"column:usuario_email;type:varchar(255);not null"`
	Name      string     `gorm:"column:nome_rotina;type:varchar(100);not null"`
	StartDate time.Time  `gorm:"column:data_inicio;type:date;not null"`
	EndDate   *time.Time `gorm:"column:data_fim;type:date"`
	Status    string     `gorm:"column:status;type:varchar(20);not null;default:ATIVO"`
}

func (RoutineModel) TableName() string {
	return "rotina_cuidado"
}

// CareItemModel é o model GORM para itens de cuidado (tabela item_cuidado)
type CareItemModel struct {
	ID           int     `gorm:"column:id_item;primaryKey;autoIncrement"`
	RoutineID    int     `gorm:"column:id_rotina;not null"`
	Name         string  `gorm:"column:nome_cuidado;type:varchar(100);not null"`
	Medication   *string `gorm:"column:medicacao;type:varchar(100)"`
	Dose         *string `gorm:"column:dose;type:varchar(50)"`
	ScheduleTime string  `gorm:"column:frequencia_horario;type:varchar(50);not null"`
}

func (CareItemModel) TableName() string {
	return "item_cuidado"
}

// SymptomModel é o model GORM para registros de sintomas (tabela sintoma)
type SymptomModel struct {
	ID             int       `gorm:"column:id_registro;primaryKey;autoIncrement"`
	UserEmail      string    `gorm:"column:usuario_email;type:varchar(255);not null"`
	RecordedAt     time.Time `gorm:"column:data_registro;not null;autoCreateTime"`
	WellBeingScore int       `gorm:"column:valor_eva_bem_estar;not null"`
	SymptomScore   int       `gorm:"column:valor_eva_sintomas;not null"`
	RiskAlert      bool      `gorm:"column:alerta_risco;not null;default:false"`
}

func (SymptomModel) TableName() string {
	return "sintoma"
}

// AdherenceModel é o model GORM para aderências (tabela aderencia)
type AdherenceModel struct {
	ID         int       `gorm:"column:id_aderencia;primaryKey;autoIncrement"`
	ItemID     int       `gorm:"column:id_item;not null"`
	ExecutedAt time.Time `gorm:"column:data_execucao;not null"`
	DoseTaken  *string   `gorm:"column:dose_realizada;type:varchar(50)"`
	Compliant  *bool     `gorm:"column:status_conformidade"`
}

func (AdherenceModel) TableName() string {
	return "aderencia"
}

// CompanionModel é o model GORM para vínculos de acompanhante (tabela
// acompanhante). Nenhuma rota exercita esta tabela hoje; o schema é
// mantido para compatibilidade com o schema em produção.
type CompanionModel struct {
	ID             int       `gorm:"column:id_vinculo;primaryKey;autoIncrement"`
	PatientEmail   string    `gorm:"column:usuario_paciente_email;type:varchar(255);not null"`
	CompanionEmail *string   `gorm:"column:usuario_acompanhante_email;type:varchar(255)"`
	InviteCode     string    `gorm:"column:codigo_convite;type:varchar(50);not null"`
	ExpiresAt      time.Time `gorm:"column:data_expiracao;not null"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:PENDENTE"`
}

func (CompanionModel) TableName() string {
	return "acompanhante"
}

// NotificationModel é o model GORM para configurações de notificação
// (tabela notificacao)
type NotificationModel struct {
	ID        int     `gorm:"column:id_notificacao;primaryKey;autoIncrement"`
	UserEmail string  `gorm:"column:usuario_email;type:varchar(255);not null"`
	Channel   string  `gorm:"column:canal;type:varchar(20);not null;default:PUSH"`
	Sound     *string `gorm:"column:som;type:varchar(50)"`
	Enabled   bool    `gorm:"column:status_alerta;not null;default:true"`
}

func (NotificationModel) TableName() string {
	return "notificacao"
}

// AllModels lista os models migrados na inicialização (create-if-absent)
func AllModels() []any {
	return []any{
		&UserModel{},
		&MedicalSheetModel{},
		&RoutineModel{},
		&CareItemModel{},
		&SymptomModel{},
		&AdherenceModel{},
		&CompanionModel{},
		&NotificationModel{},
	}
}
