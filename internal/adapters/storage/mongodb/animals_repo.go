package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"african-animals/internal/domain/animals"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// animalDoc es la forma en la colección. Los campos faltantes de documentos
// viejos (sin validación) decodifican a zero values.
type animalDoc struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Species        string        `bson:"species"`
	Extinct        bool          `bson:"extinct"`
	Location       string        `bson:"location"`
	LifeExpectancy float64       `bson:"lifeExpectancy"`
	Image          string        `bson:"image,omitempty"`
}

type AnimalsRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewAnimalsRepo(client *mongo.Client, database, collection string) *AnimalsRepo {
	return &AnimalsRepo{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

func (r *AnimalsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete animals: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) InsertMany(ctx context.Context, items []animals.Animal) ([]animals.Animal, error) {
	if len(items) == 0 {
		return []animals.Animal{}, nil
	}

	docs := make([]any, 0, len(items))
	out := make([]animals.Animal, 0, len(items))
	for _, a := range items {
		d := toDoc(a)
		d.ID = bson.NewObjectID()
		docs = append(docs, d)
		out = append(out, fromDoc(d))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("insert animals: %w", err)
	}
	return out, nil
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	d := toDoc(a)
	d.ID = bson.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return animals.Animal{}, fmt.Errorf("insert animal: %w", err)
	}
	return fromDoc(d), nil
}

func (r *AnimalsRepo) FindAll(ctx context.Context) ([]animals.Animal, error) {
	// ObjectID crece con el tiempo de inserción
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find animals: %w", err)
	}

	var docs []animalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode animals: %w", err)
	}

	out := make([]animals.Animal, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDoc(d))
	}
	return out, nil
}

func (r *AnimalsRepo) FindByID(ctx context.Context, id string) (animals.Animal, error) {
	oid, err := parseID(id)
	if err != nil {
		return animals.Animal{}, err
	}

	var d animalDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, fmt.Errorf("find animal: %w", err)
	}
	return fromDoc(d), nil
}

func (r *AnimalsRepo) Replace(ctx context.Context, a animals.Animal) error {
	oid, err := parseID(a.ID)
	if err != nil {
		return err
	}

	d := toDoc(a)
	d.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, d)
	if err != nil {
		return fmt.Errorf("replace animal: %w", err)
	}
	if res.MatchedCount == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if res.DeletedCount == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return bson.ObjectID{}, errors.Join(animals.ErrInvalidID, err)
	}
	return oid, nil
}

func toDoc(a animals.Animal) animalDoc {
	return animalDoc{
		Species:        a.Species,
		Extinct:        a.Extinct,
		Location:       a.Location,
		LifeExpectancy: a.LifeExpectancy,
		Image:          a.Image,
	}
}

func fromDoc(d animalDoc) animals.Animal {
	return animals.Animal{
		ID:             d.ID.Hex(),
		Species:        d.Species,
		Extinct:        d.Extinct,
		Location:       d.Location,
		LifeExpectancy: d.LifeExpectancy,
		Image:          d.Image,
	}
}
