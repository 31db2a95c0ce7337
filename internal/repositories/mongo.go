package repositories

import (
	"context"

	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	citiesCollection         = "cities"
	companiesCollection      = "companies"
	jobCategoriesCollection  = "jobCategories"
	qualificationsCollection = "qualifications"
	jobTypesCollection       = "jobTypes"
	jobsCollection           = "jobs"
	applicationsCollection   = "jobApplications"
)

// Mongo stores each entity kind in its own collection. The logical string
// `id` field is the primary key, not Mongo's ObjectID, so documents decode
// into exactly the same records the in-memory backend returns.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(ctx context.Context, client *mongo.Client, database string) (*Mongo, error) {
	m := &Mongo{db: client.Database(database)}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure indexes")
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {

	collections := []string{
		citiesCollection, companiesCollection, jobCategoriesCollection,
		qualificationsCollection, jobTypesCollection, jobsCollection, applicationsCollection,
	}

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, collection := range collections {
		if _, err := m.db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return err
		}
	}
	return nil
}

func listAll[T any](ctx context.Context, collection *mongo.Collection) ([]T, error) {

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %v", collection.Name())
	}

	records := []T{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", collection.Name())
	}
	return records, nil
}

func findByID[T any](ctx context.Context, collection *mongo.Collection, id string) (*T, error) {

	var record T
	err := collection.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %v", collection.Name())
	}
	return &record, nil
}

func insertOne[T any](ctx context.Context, collection *mongo.Collection, record T) (*T, error) {
	if _, err := collection.InsertOne(ctx, record); err != nil {
		return nil, errors.Wrapf(err, "failed to insert into %v", collection.Name())
	}
	return &record, nil
}

func (m *Mongo) Cities(ctx context.Context) ([]models.City, error) {
	return listAll[models.City](ctx, m.db.Collection(citiesCollection))
}

func (m *Mongo) City(ctx context.Context, id string) (*models.City, error) {
	return findByID[models.City](ctx, m.db.Collection(citiesCollection), id)
}

func (m *Mongo) CreateCity(ctx context.Context, insert models.InsertCity) (*models.City, error) {
	return insertOne(ctx, m.db.Collection(citiesCollection), newCity(insert))
}

func (m *Mongo) Companies(ctx context.Context) ([]models.Company, error) {
	return listAll[models.Company](ctx, m.db.Collection(companiesCollection))
}

func (m *Mongo) Company(ctx context.Context, id string) (*models.Company, error) {
	return findByID[models.Company](ctx, m.db.Collection(companiesCollection), id)
}

func (m *Mongo) CreateCompany(ctx context.Context, insert models.InsertCompany) (*models.Company, error) {
	return insertOne(ctx, m.db.Collection(companiesCollection), newCompany(insert))
}

func (m *Mongo) JobCategories(ctx context.Context) ([]models.JobCategory, error) {
	return listAll[models.JobCategory](ctx, m.db.Collection(jobCategoriesCollection))
}

func (m *Mongo) JobCategory(ctx context.Context, id string) (*models.JobCategory, error) {
	return findByID[models.JobCategory](ctx, m.db.Collection(jobCategoriesCollection), id)
}

func (m *Mongo) CreateJobCategory(ctx context.Context, insert models.InsertJobCategory) (*models.JobCategory, error) {
	return insertOne(ctx, m.db.Collection(jobCategoriesCollection), newJobCategory(insert))
}

func (m *Mongo) Qualifications(ctx context.Context) ([]models.Qualification, error) {
	return listAll[models.Qualification](ctx, m.db.Collection(qualificationsCollection))
}

func (m *Mongo) Qualification(ctx context.Context, id string) (*models.Qualification, error) {
	return findByID[models.Qualification](ctx, m.db.Collection(qualificationsCollection), id)
}

func (m *Mongo) CreateQualification(ctx context.Context, insert models.InsertQualification) (*models.Qualification, error) {
	return insertOne(ctx, m.db.Collection(qualificationsCollection), newQualification(insert))
}

func (m *Mongo) JobTypes(ctx context.Context) ([]models.JobType, error) {
	return listAll[models.JobType](ctx, m.db.Collection(jobTypesCollection))
}

func (m *Mongo) JobType(ctx context.Context, id string) (*models.JobType, error) {
	return findByID[models.JobType](ctx, m.db.Collection(jobTypesCollection), id)
}

func (m *Mongo) CreateJobType(ctx context.Context, insert models.InsertJobType) (*models.JobType, error) {
	return insertOne(ctx, m.db.Collection(jobTypesCollection), newJobType(insert))
}

func (m *Mongo) Jobs(ctx context.Context) ([]models.Job, error) {
	return listAll[models.Job](ctx, m.db.Collection(jobsCollection))
}

func (m *Mongo) Job(ctx context.Context, id string) (*models.Job, error) {
	return findByID[models.Job](ctx, m.db.Collection(jobsCollection), id)
}

func (m *Mongo) CreateJob(ctx context.Context, insert models.InsertJob) (*models.Job, error) {
	return insertOne(ctx, m.db.Collection(jobsCollection), newJob(insert))
}

func (m *Mongo) CreateApplication(ctx context.Context, insert models.InsertJobApplication) (*models.JobApplication, error) {
	return insertOne(ctx, m.db.Collection(applicationsCollection), newApplication(insert))
}

func (m *Mongo) ApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {

	cursor, err := m.db.Collection(applicationsCollection).Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query job applications")
	}

	applications := []models.JobApplication{}
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, errors.Wrap(err, "failed to decode job applications")
	}
	return applications, nil
}
