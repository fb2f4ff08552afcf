package dao

import (
	"context"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/rankworks/checkout.api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client    *mongo.Client
	clientMtx sync.Mutex
)

// getMongoClient returns the shared client, connecting on first use. A
// connection failure is returned to the caller, never a panic: journal writes
// happen after funds have moved, so a mongo outage must degrade to a logged
// error rather than take the process down mid-capture.
func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	clientMtx.Lock()
	defer clientMtx.Unlock()

	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)

	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	// check we can actually reach the mongodb instance
	pingContext, pingCancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer pingCancel()
	err = c.Ping(pingContext, nil)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	client = c
	return client, nil
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) (MongoDatabaseInterface, error) {
	c, err := getMongoClient(mongoDBURL)
	if err != nil {
		return nil, err
	}
	return c.Database(databaseName), nil
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver
type MongoService struct {
	db                   MongoDatabaseInterface
	mtx                  sync.Mutex
	MongoDBURL           string
	DatabaseName         string
	CollectionName       string
	EventsCollectionName string
}

// NewMongoService returns a MongoService for the supplied settings. The
// connection is established on first use.
func NewMongoService(mongoDBURL, databaseName, collectionName, eventsCollectionName string) *MongoService {
	return &MongoService{
		MongoDBURL:           mongoDBURL,
		DatabaseName:         databaseName,
		CollectionName:       collectionName,
		EventsCollectionName: eventsCollectionName,
	}
}

func (m *MongoService) database() (MongoDatabaseInterface, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.db != nil {
		return m.db, nil
	}
	db, err := getMongoDatabase(m.MongoDBURL, m.DatabaseName)
	if err != nil {
		return nil, err
	}
	m.db = db
	return m.db, nil
}

// CreateCaptureResource writes a new capture journal record to the DB
func (m *MongoService) CreateCaptureResource(captureResource *models.CaptureResourceDB) error {
	db, err := m.database()
	if err != nil {
		return err
	}

	collection := db.Collection(m.CollectionName)
	_, err = collection.InsertOne(context.Background(), captureResource)

	return err
}

// StoreWooCommerceOrderID records the WooCommerce order id against an
// existing capture journal record once the downstream commit has completed
func (m *MongoService) StoreWooCommerceOrderID(paypalOrderID string, wooOrderID int64) error {
	db, err := m.database()
	if err != nil {
		return err
	}

	collection := db.Collection(m.CollectionName)
	_, err = collection.UpdateOne(
		context.Background(),
		bson.M{"_id": paypalOrderID},
		bson.M{"$set": bson.M{"woocommerce_order_id": wooOrderID}},
	)

	return err
}

// GetCaptureResource gets a capture journal record from the DB.
// If the record is not found, nil is returned with no error.
func (m *MongoService) GetCaptureResource(paypalOrderID string) (*models.CaptureResourceDB, error) {
	var resource models.CaptureResourceDB

	db, err := m.database()
	if err != nil {
		return nil, err
	}

	collection := db.Collection(m.CollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": paypalOrderID})

	err = dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Trace("no capture record found", log.Data{"paypal_order_id": paypalOrderID})
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &resource, nil
}

// CreateWebhookEvent journals a verified webhook event
func (m *MongoService) CreateWebhookEvent(event *models.WebhookEventDB) error {
	db, err := m.database()
	if err != nil {
		return err
	}

	collection := db.Collection(m.EventsCollectionName)
	_, err = collection.InsertOne(context.Background(), event)

	return err
}
