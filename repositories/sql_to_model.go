package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/crewledger/crewpay-backend/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ExecBuilder builds and executes a statement that returns no rows.
func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	_, err = exec.Exec(ctx, query, args...)
	return errors.Wrap(err, "error executing sql query")
}

// SqlToListOfModels executes the query and maps every row through the adapter.
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zeroModel Model
			return zeroModel, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		return adapter(dbModel)
	})
}

// SqlToOptionalModel executes the query and maps the single expected row
// through the adapter. If no row matched, returns nil.
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	modelsList, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	numberOfResults := len(modelsList)
	if numberOfResults == 0 {
		return nil, nil
	}
	model := modelsList[0]
	if numberOfResults > 1 {
		return nil, errors.Newf("expected 1 or 0 %T, got %d rows in the result", model, numberOfResults)
	}
	return &model, nil
}

// SqlToModel is SqlToOptionalModel, but a missing row is a NotFoundError.
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}
