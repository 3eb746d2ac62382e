package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizdata/business-api/internal/core/domain"
)

const companiesCollection = "companies"

// CompanyRepository persists companies with the NIT as the document key.
type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companiesCollection)}
}

type mongoCompany struct {
	NIT     string `bson:"_id"`
	Name    string `bson:"name"`
	Address string `bson:"address,omitempty"`
	Phone   string `bson:"phone,omitempty"`
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCompany
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}

	companies := make([]domain.Company, len(docs))
	for i, doc := range docs {
		companies[i] = doc.toDomain()
	}
	return companies, nil
}

func (r *CompanyRepository) FindByNIT(ctx context.Context, nit string) (*domain.Company, error) {
	var doc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"_id": nit}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	company := doc.toDomain()
	return &company, nil
}

func (r *CompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("count companies: %w", err)
	}
	return n > 0, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	_, err := r.coll.InsertOne(ctx, fromDomainCompany(*company))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": company.NIT}, fromDomainCompany(*company))
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, nit string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": nit})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func fromDomainCompany(c domain.Company) mongoCompany {
	return mongoCompany{
		NIT:     c.NIT,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

func (doc mongoCompany) toDomain() domain.Company {
	return domain.Company{
		NIT:     doc.NIT,
		Name:    doc.Name,
		Address: doc.Address,
		Phone:   doc.Phone,
	}
}
