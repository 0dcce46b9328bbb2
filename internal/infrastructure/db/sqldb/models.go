package sqldb

import "github.com/99minutos/vehicles-api/internal/core/domain"

type administratorRow struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"size:255;not null;index"`
	Password string `gorm:"size:255;not null"`
	Role     string `gorm:"size:10;not null"`
}

func (administratorRow) TableName() string { return "administrators" }

func (r administratorRow) toDomain() domain.Administrator {
	return domain.Administrator{ID: r.ID, Email: r.Email, PasswordHash: r.Password, Role: r.Role}
}

type vehicleRow struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:150;not null"`
	Brand string `gorm:"size:100;not null"`
	Year  int    `gorm:"not null"`
}

func (vehicleRow) TableName() string { return "vehicles" }

func (r vehicleRow) toDomain() domain.Vehicle {
	return domain.Vehicle{ID: r.ID, Name: r.Name, Brand: r.Brand, Year: r.Year}
}
