// Package api serves the scheduling engines over HTTP.
package api

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Config holds the server defaults.
type Config struct {
	Port     int
	Quantum  int64   // Round Robin quantum when a request omits one
	Quantums []int64 // MLFQ quantums when a request omits them
	Verify   bool    // check every result's invariants before responding
}

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	AllPolicies(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *Config
}

func NewSchedulerHandlerImpl(config *Config) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule runs the policy named by the :policy route parameter.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	name := ctx.Params("policy")
	if !sim.IsValidPolicy(name) {
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: fmt.Sprintf("unknown policy %q", name),
		})
	}
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	res, err := s.run(name, request)
	if err != nil {
		return ctx.Status(statusFor(err)).JSON(ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(newScheduleResponse(res))
}

// AllPolicies runs every policy concurrently over the same workload.
func (s *SchedulerHandlerImpl) AllPolicies(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	names := sim.PolicyNames()
	results := make([]*sim.Result, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = s.run(name, request)
		}()
	}
	wg.Wait()

	out := AllResponse{Results: make([]PolicyOutcome, len(names))}
	for i, name := range names {
		out.Results[i].Policy = name
		switch {
		case errs[i] == nil:
			out.Results[i].Result = newScheduleResponse(results[i])
		case errors.Is(errs[i], sim.ErrMissingField):
			out.Results[i].Error = errs[i].Error()
		default:
			return ctx.Status(statusFor(errs[i])).JSON(ErrorResponse{Error: errs[i].Error()})
		}
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(PoliciesResponse{Policies: sim.PolicyNames()})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*ScheduleRequest, error) {
	request := &ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, fmt.Errorf("invalid request format: %w", err)
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) run(name string, request *ScheduleRequest) (*sim.Result, error) {
	res, err := sim.RunNamed(name, request.Processes, request.params(s.config))
	if err != nil {
		return nil, err
	}
	if s.config.Verify {
		if err := sim.Verify(request.Processes, res); err != nil {
			logrus.Errorf("%s produced an invalid schedule: %v", name, err)
			return nil, err
		}
	}
	return res, nil
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrInvalidParameter),
		errors.Is(err, sim.ErrMissingField),
		errors.Is(err, sim.ErrMalformedInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
