package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/justsurfingit/devjobs/internal/errors"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/query"
)

// columns whitelists the predicate fields that map onto plain columns.
var columns = map[string]string{
	query.FieldApproved:     "approved",
	query.FieldType:         "type",
	query.FieldLocation:     "location",
	query.FieldLocationType: "location_type",
	query.FieldCreatedAt:    "created_at",
}

// searchExpr is matched by query.OpContains clauses on query.FieldSearch.
// Every term is its own ILIKE so no OR is needed.
const searchExpr = "concat_ws(' ', title, company_name, type, location_type, location)"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// JobStore executes query predicates against the jobs table.
type JobStore struct {
	DB *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{DB: db}
}

// FindMany returns the jobs matching p in p's order. Logo bytes are not
// loaded.
func (s *JobStore) FindMany(ctx context.Context, p query.Predicate) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	err := s.DB.WithContext(ctx).
		Omit("company_logo").
		Scopes(applyPredicate(p)).
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("listing jobs", err)
	}
	return jobs, nil
}

// DistinctValues returns the distinct non-empty values of field among the
// jobs matching p's clauses, sorted ascending. p's ordering is ignored.
func (s *JobStore) DistinctValues(ctx context.Context, field string, p query.Predicate) ([]string, error) {
	col, ok := columns[field]
	if !ok || field == query.FieldApproved || field == query.FieldCreatedAt {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cannot list distinct values of %q", field), nil)
	}

	values := make([]string, 0)
	err := s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Scopes(applyClauses(p.Clauses)).
		Where(col+" <> ''").
		Distinct(col).
		Order(col).
		Pluck(col, &values).Error
	if err != nil {
		return nil, apperrors.Internal("listing distinct "+field, err)
	}
	return values, nil
}

func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return apperrors.Internal("creating job", err)
	}
	return nil
}

func (s *JobStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func applyPredicate(p query.Predicate) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = applyClauses(p.Clauses)(tx)
		if p.Order.Field == "" {
			return tx
		}
		col, ok := columns[p.Order.Field]
		if !ok {
			tx.AddError(fmt.Errorf("unknown order field %q", p.Order.Field))
			return tx
		}
		return tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: p.Order.Desc})
	}
}

func applyClauses(clauses []query.Clause) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		for _, c := range clauses {
			switch {
			case c.Op == query.OpContains && c.Field == query.FieldSearch:
				term, _ := c.Value.(string)
				tx = tx.Where(searchExpr+" ILIKE ?", "%"+likeEscaper.Replace(term)+"%")
			case c.Op == query.OpEq:
				col, ok := columns[c.Field]
				if !ok {
					tx.AddError(fmt.Errorf("unknown filter field %q", c.Field))
					return tx
				}
				tx = tx.Where(col+" = ?", c.Value)
			default:
				tx.AddError(fmt.Errorf("unsupported clause %s", c))
				return tx
			}
		}
		return tx
	}
}
