package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client interface {
	Database(name string) Database
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}

type Database interface {
	Collection(name string) Collection
	Client() Client
}

type Collection interface {
	FindOne(ctx context.Context, filter interface{}) SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}) (Cursor, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Indexes() IndexView
	BulkWrite() BulkWrite
}

type SingleResult interface {
	Decode(v interface{}) error
}

type Cursor interface {
	Close(ctx context.Context) error
	Next(ctx context.Context) bool
	Decode(v interface{}) error
	All(ctx context.Context, results interface{}) error
}

type IndexView interface {
	CreateOne(ctx context.Context, model mongo.IndexModel) (string, error)
}

// BulkWrite accumulates write models and executes them as one batch. Models
// are the driver's mongo.WriteModel values.
type BulkWrite interface {
	AddModel(models ...BulkModel)
	Execute(ctx context.Context) (BulkWriteResult, error)
}

type BulkModel interface{}

type BulkWriteResult interface {
	MatchedCount() int64
	ModifiedCount() int64
	UpsertedCount() int64
}

type mongoClient struct{ cl *mongo.Client }
type mongoDatabase struct{ db *mongo.Database }
type mongoCollection struct{ coll *mongo.Collection }
type mongoSingleResult struct{ sr *mongo.SingleResult }
type mongoCursor struct{ mc *mongo.Cursor }
type mongoIndexView struct{ iv mongo.IndexView }

func NewClient(connection string) (Client, error) {
	time.Local = time.UTC
	c, err := mongo.NewClient(options.Client().ApplyURI(connection))
	return &mongoClient{cl: c}, err
}

func (mc *mongoClient) Database(name string) Database {
	return &mongoDatabase{db: mc.cl.Database(name)}
}

func (mc *mongoClient) Connect(ctx context.Context) error {
	return mc.cl.Connect(ctx)
}

func (mc *mongoClient) Disconnect(ctx context.Context) error {
	return mc.cl.Disconnect(ctx)
}

func (mc *mongoClient) Ping(ctx context.Context) error {
	return mc.cl.Ping(ctx, readpref.Primary())
}

func (md *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: md.db.Collection(name)}
}

func (md *mongoDatabase) Client() Client {
	return &mongoClient{cl: md.db.Client()}
}

func (mc *mongoCollection) FindOne(ctx context.Context, filter interface{}) SingleResult {
	return &mongoSingleResult{sr: mc.coll.FindOne(ctx, filter)}
}

func (mc *mongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	cursor, err := mc.coll.Find(ctx, filter, opts...)
	return &mongoCursor{mc: cursor}, err
}

func (mc *mongoCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return mc.coll.CountDocuments(ctx, filter, opts...)
}

func (mc *mongoCollection) Aggregate(ctx context.Context, pipeline interface{}) (Cursor, error) {
	cursor, err := mc.coll.Aggregate(ctx, pipeline)
	return &mongoCursor{mc: cursor}, err
}

func (mc *mongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return mc.coll.UpdateOne(ctx, filter, update, opts...)
}

func (mc *mongoCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := mc.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (mc *mongoCollection) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	return mc.coll.Distinct(ctx, fieldName, filter)
}

func (mc *mongoCollection) Indexes() IndexView {
	return &mongoIndexView{iv: mc.coll.Indexes()}
}

func (mc *mongoCollection) BulkWrite() BulkWrite {
	return &mongoBulkWrite{coll: mc.coll}
}

func (sr *mongoSingleResult) Decode(v interface{}) error {
	return sr.sr.Decode(v)
}

func (cu *mongoCursor) Close(ctx context.Context) error {
	return cu.mc.Close(ctx)
}

func (cu *mongoCursor) Next(ctx context.Context) bool {
	return cu.mc.Next(ctx)
}

func (cu *mongoCursor) Decode(v interface{}) error {
	return cu.mc.Decode(v)
}

func (cu *mongoCursor) All(ctx context.Context, results interface{}) error {
	return cu.mc.All(ctx, results)
}

func (iv *mongoIndexView) CreateOne(ctx context.Context, model mongo.IndexModel) (string, error) {
	return iv.iv.CreateOne(ctx, model)
}

type mongoBulkWrite struct {
	coll   *mongo.Collection
	models []mongo.WriteModel
}

func (mb *mongoBulkWrite) AddModel(models ...BulkModel) {
	for _, model := range models {
		mb.models = append(mb.models, model.(mongo.WriteModel))
	}
}

func (mb *mongoBulkWrite) Execute(ctx context.Context) (BulkWriteResult, error) {
	if len(mb.models) == 0 {
		return nil, errors.New("no operations to execute")
	}
	res, err := mb.coll.BulkWrite(ctx, mb.models)
	if err != nil {
		return nil, err
	}
	return &mongoBulkWriteResult{res: res}, nil
}

type mongoBulkWriteResult struct{ res *mongo.BulkWriteResult }

func (m *mongoBulkWriteResult) MatchedCount() int64  { return m.res.MatchedCount }
func (m *mongoBulkWriteResult) ModifiedCount() int64 { return m.res.ModifiedCount }
func (m *mongoBulkWriteResult) UpsertedCount() int64 { return m.res.UpsertedCount }
