package mappingrepo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/filedrop/file-delivery-bot/internal/config"
	"github.com/filedrop/file-delivery-bot/internal/delivery"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mappingField   = "mapping"
	messageIDField = "message_id"
)

// Connect creates a client for the configured MongoDB deployment. The driver connects
// lazily, so an unreachable server shows up on the first query rather than here.
func Connect(ctx context.Context, settings *config.Settings) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(settings.MongoURI).
		SetTimeout(settings.MongoTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

// Repository reads mapping documents. It never writes.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a Repository over the given collection.
func NewRepository(collection *mongo.Collection) *Repository {
	return &Repository{collection: collection}
}

// NewRepositoryFromSettings picks the database and collection named in the settings.
func NewRepositoryFromSettings(client *mongo.Client, settings *config.Settings) *Repository {
	return NewRepository(client.Database(settings.MongoDBName).Collection(settings.MongoCollection))
}

// FindMapping looks up the record for a mapping key. A missing document, or one without a
// usable message_id, returns delivery.ErrMappingNotFound.
func (r *Repository) FindMapping(ctx context.Context, mapping string) (*delivery.Record, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx,
		bson.M{mappingField: mapping},
		options.FindOne().SetProjection(bson.M{messageIDField: 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", delivery.ErrMappingNotFound, mapping)
		}
		return nil, richerrors.Error{
			ExternalMsg: "Mapping store unavailable",
			Err:         fmt.Errorf("failed to find mapping %q: %w", mapping, err),
			Code:        http.StatusServiceUnavailable,
		}
	}

	messageID, ok := messageIDFromValue(doc[messageIDField])
	if !ok {
		return nil, fmt.Errorf("%w: %s has no usable %s", delivery.ErrMappingNotFound, mapping, messageIDField)
	}
	return &delivery.Record{Mapping: mapping, MessageID: messageID}, nil
}

// Ping checks that the store answers.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// messageIDFromValue accepts the numeric encodings a document writer may have used,
// as well as decimal strings.
func messageIDFromValue(v any) (int64, bool) {
	switch id := v.(type) {
	case int32:
		return int64(id), true
	case int64:
		return id, true
	case int:
		return int64(id), true
	case float64:
		if id != math.Trunc(id) || math.IsInf(id, 0) || math.IsNaN(id) {
			return 0, false
		}
		return int64(id), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
