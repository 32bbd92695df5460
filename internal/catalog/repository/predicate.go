package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compile turns a predicate into a gorm expression. A nil expression means
// no restriction.
func compile(pred domain.Predicate) (clause.Expression, error) {
	switch p := pred.(type) {
	case nil:
		return nil, nil
	case domain.Contains:
		return clause.Expr{
			SQL:  `? LIKE ? ESCAPE '\'`,
			Vars: []any{clause.Column{Name: string(p.Column)}, "%" + likeEscaper.Replace(p.Term) + "%"},
		}, nil
	case domain.Equals:
		return clause.Eq{Column: clause.Column{Name: string(p.Column)}, Value: p.Value}, nil
	case domain.AnyOf:
		exprs, err := compileAll(p)
		if err != nil || len(exprs) == 0 {
			return nil, err
		}
		return clause.Or(exprs...), nil
	case domain.AllOf:
		exprs, err := compileAll(p)
		if err != nil || len(exprs) == 0 {
			return nil, err
		}
		if len(exprs) == 1 {
			return exprs[0], nil
		}
		return clause.AndConditions{Exprs: exprs}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T", pred)
	}
}

func compileAll(preds []domain.Predicate) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(preds))
	for _, p := range preds {
		expr, err := compile(p)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}
	return exprs, nil
}

// where applies pred to tx
func where(tx *gorm.DB, pred domain.Predicate) (*gorm.DB, error) {
	expr, err := compile(pred)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return tx, nil
	}
	return tx.Clauses(clause.Where{Exprs: []clause.Expression{expr}}), nil
}
