package usecase

import (
	"context"
	"sort"

	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// RankCandidates scores every worker against one job and returns the
// results sorted by overall score descending, with worker ID as the
// deterministic tie-break. The first invalid profile aborts the batch.
func (s *MatchService) RankCandidates(ctx context.Context, workers []domain.WorkerProfile, job *domain.JobProfile) ([]domain.MatchResult, error) {
	results := make([]domain.MatchResult, 0, len(workers))
	for i := range workers {
		res, err := s.ComputeMatch(ctx, &workers[i], job)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Overall != results[j].Overall {
			return results[i].Overall > results[j].Overall
		}
		return results[i].WorkerID < results[j].WorkerID
	})
	return results, nil
}

// RankJobs scores one worker against every job and returns the results
// sorted by overall score descending, with job ID as the tie-break.
func (s *MatchService) RankJobs(ctx context.Context, worker *domain.WorkerProfile, jobs []domain.JobProfile) ([]domain.MatchResult, error) {
	results := make([]domain.MatchResult, 0, len(jobs))
	for i := range jobs {
		res, err := s.ComputeMatch(ctx, worker, &jobs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Overall != results[j].Overall {
			return results[i].Overall > results[j].Overall
		}
		return results[i].JobID < results[j].JobID
	})
	return results, nil
}
