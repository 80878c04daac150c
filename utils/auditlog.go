package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/repositories"
)

var LogAuditWithConsole = func(c *gin.Context, action, entityType, entityID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	if err := LogAudit(c, userID, action, entityType, entityID, oldData, newData, msg, repos); err != nil {
		fmt.Printf("[LogAudit] error: %v\n", err)
	}
}

func LogAudit(
	c *gin.Context,
	userID uint,
	action string,
	entityType string,
	entityID string,
	before any,
	after any,
	description string,
	repos repositories.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	audit := &models.AuditLog{
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		OldData:     oldData,
		NewData:     newData,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
		Description: description,
	}

	return repos.CreateAuditLog(audit)
}
