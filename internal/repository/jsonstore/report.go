package jsonstore

import (
	"context"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
)

type reportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) repository.ReportRepository {
	return &reportRepository{store: store}
}

func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	l := r.store.lock(collectionReports)
	l.Lock()
	defer l.Unlock()

	reports := make([]model.Report, 0)
	if err := r.store.load(collectionReports, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	l := r.store.lock(collectionReports)
	l.Lock()
	defer l.Unlock()

	var reports []model.Report
	if err := r.store.load(collectionReports, &reports); err != nil {
		return err
	}
	reports = append(reports, *report)
	return r.store.save(collectionReports, reports)
}
