package models

// EmployeeRow espelha a tabela "empleados" quando o store é o Postgres.
type EmployeeRow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Numero string `gorm:"size:50;index" json:"numero"`
	Nombre string `gorm:"size:255" json:"nombre"`
	Equipo string `gorm:"size:120" json:"equipo"`
}

func (EmployeeRow) TableName() string { return "empleados" }
