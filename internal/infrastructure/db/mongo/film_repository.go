package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlog/catalog-api/internal/core/domain"
)

const filmsCollection = "films"

type MongoFilmRepository struct {
	coll     *mongo.Collection
	counters *CounterRepository
}

func NewFilmRepository(db *mongo.Database, counters *CounterRepository) *MongoFilmRepository {
	return &MongoFilmRepository{coll: db.Collection(filmsCollection), counters: counters}
}

type mongoFilm struct {
	ID           int64    `bson:"_id"`
	Title        string   `bson:"title"`
	EpisodeID    int      `bson:"episode_id"`
	OpeningCrawl string   `bson:"opening_crawl"`
	Director     string   `bson:"director"`
	Producer     string   `bson:"producer"`
	ReleaseDate  string   `bson:"release_date"`
	Characters   []string `bson:"characters"`
	Planets      []string `bson:"planets,omitempty"`
	Starships    []string `bson:"starships,omitempty"`
	Vehicles     []string `bson:"vehicles,omitempty"`
	Species      []string `bson:"species,omitempty"`
	URL          string   `bson:"url"`
	CreatedAt    int64    `bson:"created_at"`
	UpdatedAt    int64    `bson:"updated_at"`
}

func (r *MongoFilmRepository) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	id, err := r.counters.Next(ctx, filmsCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoFilm(film)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert film: %w", err)
	}

	created := *film
	created.ID = id
	return &created, nil
}

func (r *MongoFilmRepository) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoFilmRepository) FindByTitle(ctx context.Context, title string) (*domain.Film, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *MongoFilmRepository) findOne(ctx context.Context, filter bson.M) (*domain.Film, error) {
	var mf mongoFilm
	if err := r.coll.FindOne(ctx, filter).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("find film: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *MongoFilmRepository) FindAll(ctx context.Context) ([]domain.Film, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	defer cursor.Close(ctx)

	var films []domain.Film
	for cursor.Next(ctx) {
		var mf mongoFilm
		if err := cursor.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode film: %w", err)
		}
		films = append(films, *mf.toDomain())
	}
	return films, cursor.Err()
}

func (r *MongoFilmRepository) FindAllTitles(ctx context.Context) ([]string, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().
			SetProjection(bson.M{"title": 1}).
			SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find film titles: %w", err)
	}
	defer cursor.Close(ctx)

	var titles []string
	for cursor.Next(ctx) {
		var row struct {
			Title string `bson:"title"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode film title: %w", err)
		}
		titles = append(titles, row.Title)
	}
	return titles, cursor.Err()
}

func (r *MongoFilmRepository) Update(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	doc := toMongoFilm(film)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": film.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update film: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFilmNotFound
	}
	return film, nil
}

func (r *MongoFilmRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFilmNotFound
	}
	return nil
}

func toMongoFilm(f *domain.Film) mongoFilm {
	return mongoFilm{
		ID:           f.ID,
		Title:        f.Title,
		EpisodeID:    f.EpisodeID,
		OpeningCrawl: f.OpeningCrawl,
		Director:     f.Director,
		Producer:     f.Producer,
		ReleaseDate:  f.ReleaseDate,
		Characters:   f.Characters,
		Planets:      f.Planets,
		Starships:    f.Starships,
		Vehicles:     f.Vehicles,
		Species:      f.Species,
		URL:          f.URL,
		CreatedAt:    f.CreatedAt.Unix(),
		UpdatedAt:    f.UpdatedAt.Unix(),
	}
}

func (mf *mongoFilm) toDomain() *domain.Film {
	return &domain.Film{
		ID:           mf.ID,
		Title:        mf.Title,
		EpisodeID:    mf.EpisodeID,
		OpeningCrawl: mf.OpeningCrawl,
		Director:     mf.Director,
		Producer:     mf.Producer,
		ReleaseDate:  mf.ReleaseDate,
		Characters:   mf.Characters,
		Planets:      mf.Planets,
		Starships:    mf.Starships,
		Vehicles:     mf.Vehicles,
		Species:      mf.Species,
		URL:          mf.URL,
		CreatedAt:    unixToTime(mf.CreatedAt),
		UpdatedAt:    unixToTime(mf.UpdatedAt),
	}
}
