package repository

import (
	"sync"

	"facegate.io/entities"
	"facegate.io/infrastructure/database/connection/datastore"
	"facegate.io/infrastructure/database/repository/mongo"
)

var biometricAuditOnce = sync.Once{}

var biometricAuditRepository mongo.MongoRepository[entities.BiometricAuditLog]

func BiometricAuditRepo() *mongo.MongoRepository[entities.BiometricAuditLog] {
	biometricAuditOnce.Do(func() {
		biometricAuditRepository = mongo.MongoRepository[entities.BiometricAuditLog]{Model: datastore.BiometricAuditModel}
	})
	return &biometricAuditRepository
}
