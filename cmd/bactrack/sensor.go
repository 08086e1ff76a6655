package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/sensor"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

func newSensorCmd(opts *rootOptions) *cobra.Command {
	var (
		device string
		record string
	)

	cmd := &cobra.Command{
		Use:   "sensor",
		Short: "Sample the breath sensor and print the BAC",
		Long: "Reads raw values from the sensor device, converts the peak to BAC and " +
			"optionally records it as a reading for a registered user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if device == "" {
				device = opts.cfg.SensorDevice
			}
			if device == "" {
				return errors.New("no sensor device, set --device or SENSOR_DEVICE")
			}

			f, err := os.Open(device)
			if err != nil {
				return fmt.Errorf("failed to open sensor device: %w", err)
			}
			defer f.Close()

			reader, err := sensor.New(&sensor.Config{
				Source:   f,
				Samples:  opts.cfg.SensorSamples,
				Interval: opts.cfg.SensorInterval,
			})
			if err != nil {
				return err
			}

			value, err := reader.Sample(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BAC: %.4f\n", value)

			if record == "" {
				return nil
			}

			client, err := connectRedis(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			svc, err := newService(client, opts.cfg)
			if err != nil {
				return err
			}

			output, err := svc.RecordReading(cmd.Context(), &tracker.RecordReadingInput{
				Username: record,
				BAC:      value,
				Source:   models.ReadingSourceSensor,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recorded reading %s for session %s\n", output.Reading.ID, output.Reading.SessionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "sensor device path, defaults to SENSOR_DEVICE")
	cmd.Flags().StringVar(&record, "record", "", "username to record the reading for")

	return cmd
}
