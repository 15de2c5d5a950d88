package models

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler — общие зависимости обработчиков сущностей.
type Handler struct {
	DB  *gorm.DB
	Log logrus.FieldLogger
}
