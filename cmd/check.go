package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkCapacityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_capacity"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	ruleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/rule"
	checkCapacityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_capacity"
)

// newCheckCmd проверка вместимости слота из командной строки, без HTTP
func newCheckCmd(configPath *string) *cobra.Command {
	var (
		storeID string
		date    string
		slot    string
		people  int
	)

	c := &cobra.Command{
		Use:   "check",
		Short: "Evaluate capacity rules for a slot and print the decision as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := checkCapacityHandler.CheckCapacityRequest{Date: date, Time: slot, People: people}
			if err := handlers.Validate(req); err != nil {
				return err
			}
			useCaseReq, err := req.ToUseCaseRequest(storeID)
			if err != nil {
				return err
			}

			b, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			defer b.Close()

			uc := checkCapacityUC.NewUseCase(
				ruleRepo.NewRepository(b.db),
				reservationRepo.NewRepository(b.db),
				b.metrics,
				b.log,
			)

			result, err := uc.Execute(ctx, useCaseReq)
			if err != nil {
				if errors.Is(err, checkCapacityUC.ErrInvalidInput) {
					return err
				}
				return errors.New("capacity check failed, see logs for details")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(checkCapacityHandler.FromUseCaseResponse(result))
		},
	}

	c.Flags().StringVar(&storeID, "store", "", "store id")
	c.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	c.Flags().StringVar(&slot, "time", "", "slot start, HH:MM")
	c.Flags().IntVar(&people, "people", 1, "party size")
	_ = c.MarkFlagRequired("store")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	return c
}
