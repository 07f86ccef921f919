package repositories

import (
	"context"

	"github.com/gymbros-app/backend/internal/gymbros"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTransactor implements gymbros.Transactor with MongoDB multi-document
// transactions. The accept-request path writes the request document and both
// user documents; running them in one transaction keeps the friend graph
// symmetric even when a write fails partway. Requires a replica set.
type MongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor creates a new MongoTransactor
func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

// WithinTransaction runs fn inside a session transaction. Writes issued with
// the callback context commit or abort together.
func (t *MongoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return gymbros.Transient("start session", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
