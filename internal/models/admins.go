package models

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const adminsDocID = "admins"

// AdminList is the singleton allowlist document granting admin privilege.
// It replaces the env-var allowlist the app started with, so admins can be
// changed without a redeploy.
type AdminList struct {
	ID     string   `bson:"_id" json:"id"`
	Emails []string `bson:"emails" json:"emails"`
}

// IsAdmin matches case-insensitively on email.
func (a *AdminList) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	for _, e := range a.Emails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}

type AdminRepo interface {
	GetAdminList(ctx context.Context) (*AdminList, error)
}

func (mdb *MongodbRepo) GetAdminList(ctx context.Context) (*AdminList, error) {
	col, err := mdb.GetCollection(ctx, DBName, ConfigColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var list AdminList
	err = col.FindOne(ctx, bson.M{"_id": adminsDocID}).Decode(&list)
	if err == mongo.ErrNoDocuments {
		// No allowlist document means nobody is an admin yet.
		return &AdminList{ID: adminsDocID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading admin allowlist: %v", err)
	}

	return &list, nil
}
