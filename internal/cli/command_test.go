package cli_test

import (
	"context"
	"fmt"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/cli"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/exec"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/logging"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Command", func() {
	It("joins multiple lines with the AND-sequencing operator", func() {
		cmd := cli.Command{"git fetch origin", "git checkout develop"}
		Expect(cmd.Line()).To(Equal("git fetch origin && git checkout develop"))
	})

	It("leaves a single line untouched", func() {
		Expect(cli.Command{"npm ci"}.Line()).To(Equal("npm ci"))
	})
})

var _ = Describe("ExecCommand", func() {
	var (
		ctx        context.Context
		logger     *mocks.Logger
		service    cli.Service
		taskRunner *mocks.TaskRunner

		executedScript string
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = new(mocks.Logger)
		taskRunner = new(mocks.TaskRunner)
		executedScript = ""

		taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
			executedScript = cfg.Script
			return new(mocks.Command), nil
		}

		service = cli.Service{
			Log:        logger,
			TaskRunner: taskRunner,
		}
	})

	Context("when the command succeeds", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				executedScript = cfg.Script
				return &mocks.Command{
					MockStart: func() error { return nil },
					MockWait:  func() error { return nil },
				}, nil
			}
		})

		It("runs the joined command line", func() {
			err := service.ExecCommand(ctx, "", cli.Command{"true", "true"}, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(executedScript).To(Equal("true && true"))
		})

		It("emits the pre-message at progress level and the post-message at debug level", func() {
			err := service.ExecCommand(ctx, "Doing the thing", cli.Command{"true"}, "Did the thing")

			Expect(err).NotTo(HaveOccurred())
			Expect(logger.Entries).To(HaveLen(3))
			Expect(logger.Entries[0].Level).To(Equal("progress"))
			Expect(logger.Entries[0].Message).To(Equal("Doing the thing"))
			Expect(logger.Entries[1].Level).To(Equal("debug"))
			Expect(logger.Entries[1].Message).To(Equal("⚡ true"))
			Expect(logger.Entries[2].Level).To(Equal("debug"))
			Expect(logger.Entries[2].Message).To(Equal("Did the thing"))
		})
	})

	Context("when the command exits non-zero", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				executedScript = cfg.Script
				return &mocks.Command{
					MockStart: func() error { return nil },
					MockWait:  func() error { return fmt.Errorf("exit status 3") },
				}, nil
			}
			taskRunner.MockGetExitStatusFromError = func(error) (exec.ExitStatus, error) {
				return exec.Exited(3), nil
			}
		})

		It("returns an execution error carrying the exit code", func() {
			err := service.ExecCommand(ctx, "", cli.Command{"exit 3"}, "")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("3"))

			executionErr, ok := errors.AsExecutionError(err)
			Expect(ok).To(Equal(true))
			Expect(executionErr.Code).To(Equal(3))
		})

		It("reports the failure without escalating", func() {
			_ = service.ExecCommand(ctx, "", cli.Command{"exit 3"}, "")

			Expect(logger.Levels()).NotTo(ContainElement("error"))

			last := logger.Entries[len(logger.Entries)-1]
			Expect(last.Level).To(Equal("failure"))
			Expect(last.Escalation).To(Equal(logging.KeepRunning))
			Expect(last.Message).To(ContainSubstring("exit status 3"))
		})

		It("skips the post-message", func() {
			_ = service.ExecCommand(ctx, "", cli.Command{"exit 3"}, "All done")

			Expect(logger.Messages()).NotTo(ContainElement("All done"))
		})
	})

	Context("when the command cannot be spawned", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				return &mocks.Command{
					MockStart: func() error { return fmt.Errorf("no such file or directory") },
				}, nil
			}
		})

		It("returns a system error", func() {
			err := service.ExecCommand(ctx, "", cli.Command{"definitely-not-a-command"}, "")

			Expect(err).To(HaveOccurred())

			_, ok := errors.AsSystemError(err)
			Expect(ok).To(Equal(true))
		})
	})
})

var _ = Describe("ExecCommandReturnStatus", func() {
	var (
		ctx        context.Context
		logger     *mocks.Logger
		service    cli.Service
		taskRunner *mocks.TaskRunner
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = new(mocks.Logger)
		taskRunner = new(mocks.TaskRunner)

		service = cli.Service{
			Log:        logger,
			TaskRunner: taskRunner,
		}
	})

	Context("when the command succeeds", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				return &mocks.Command{
					MockStart: func() error { return nil },
					MockWait:  func() error { return nil },
				}, nil
			}
		})

		It("reports exit code 0", func() {
			status := service.ExecCommandReturnStatus(ctx, "", cli.Command{"true"}, "")

			Expect(status).To(Equal(exec.Exited(0)))
			Expect(status.Success()).To(Equal(true))
		})

		It("emits the post-message at progress level", func() {
			_ = service.ExecCommandReturnStatus(ctx, "", cli.Command{"true"}, "All done")

			last := logger.Entries[len(logger.Entries)-1]
			Expect(last.Level).To(Equal("progress"))
			Expect(last.Message).To(Equal("All done"))
		})
	})

	Context("when the command exits non-zero", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				return &mocks.Command{
					MockStart: func() error { return nil },
					MockWait:  func() error { return fmt.Errorf("exit status 3") },
				}, nil
			}
			taskRunner.MockGetExitStatusFromError = func(error) (exec.ExitStatus, error) {
				return exec.Exited(3), nil
			}
		})

		It("returns the reported exit code instead of an error", func() {
			status := service.ExecCommandReturnStatus(ctx, "", cli.Command{"exit 3"}, "")

			Expect(status).To(Equal(exec.Exited(3)))
		})

		It("logs a warning", func() {
			_ = service.ExecCommandReturnStatus(ctx, "", cli.Command{"exit 3"}, "")

			last := logger.Entries[len(logger.Entries)-1]
			Expect(last.Level).To(Equal("warn"))
			Expect(last.Message).To(ContainSubstring("exit status 3"))
		})
	})

	Context("when the process never reports an exit status", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				return &mocks.Command{
					MockStart: func() error { return nil },
					MockWait:  func() error { return fmt.Errorf("signal: killed") },
				}, nil
			}
			taskRunner.MockGetExitStatusFromError = func(error) (exec.ExitStatus, error) {
				return exec.UnknownStatus, nil
			}
		})

		It("propagates the unknown-status sentinel unchanged", func() {
			status := service.ExecCommandReturnStatus(ctx, "", cli.Command{"sleep 60"}, "")

			Expect(status).To(Equal(exec.UnknownStatus))
			Expect(status.Success()).To(Equal(false))
		})
	})

	Context("when the command cannot be spawned", func() {
		BeforeEach(func() {
			taskRunner.MockNewCommand = func(_ context.Context, cfg exec.CommandConfig) (exec.Command, error) {
				return &mocks.Command{
					MockStart: func() error { return fmt.Errorf("no such file or directory") },
				}, nil
			}
		})

		It("reports the unknown-status sentinel with a warning", func() {
			status := service.ExecCommandReturnStatus(ctx, "", cli.Command{"definitely-not-a-command"}, "")

			Expect(status).To(Equal(exec.UnknownStatus))
			Expect(logger.Levels()).To(ContainElement("warn"))
		})
	})
})
