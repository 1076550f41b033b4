package runtime

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/pref-align/go-trainer/gen/runtimepb"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
)

// #region client-struct

// Client wraps the gRPC connection to the Python training runtime.
type Client struct {
	conn   *grpc.ClientConn
	client pb.RuntimeServiceClient
}

var _ Runtime = (*Client)(nil)

// #endregion client-struct

// #region constructor

// NewClient connects to the training runtime gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewRuntimeServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.RuntimeServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region load-model

// LoadModel asks the runtime to load the base model with an adapter attached.
func (c *Client) LoadModel(ctx context.Context, modelID string, quantBits int, adapterType string, seed int64) (ModelInfo, error) {
	resp, err := c.client.LoadModel(ctx, &pb.LoadModelRequest{
		ModelId:          modelID,
		QuantizationBits: int32(quantBits),
		AdapterType:      adapterType,
		Seed:             seed,
	})
	if err != nil {
		return ModelInfo{}, fmt.Errorf("load model rpc: %w", err)
	}
	return ModelInfo{
		ModelHash:  resp.ModelHash,
		ParamCount: resp.ParamCount,
	}, nil
}

// #endregion load-model

// #region train-step

// TrainStep runs one optimization step over the batch.
func (c *Client) TrainStep(ctx context.Context, step int, pairs []data.Pair, beta, learningRate float64) (StepResult, error) {
	resp, err := c.client.TrainStep(ctx, &pb.TrainStepRequest{
		Step:         int64(step),
		Batch:        toProtoPairs(pairs),
		Beta:         beta,
		LearningRate: learningRate,
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("train step rpc: %w", err)
	}
	return StepResult{
		PolicyChosen:   resp.PolicyChosenLogprobs,
		PolicyRejected: resp.PolicyRejectedLogprobs,
		RefChosen:      resp.ReferenceChosenLogprobs,
		RefRejected:    resp.ReferenceRejectedLogprobs,
		GradNorm:       resp.GradNorm,
	}, nil
}

// #endregion train-step

// #region eval-batch

// EvalBatch runs a forward-only pass over the batch.
func (c *Client) EvalBatch(ctx context.Context, pairs []data.Pair, beta float64) (StepResult, error) {
	resp, err := c.client.EvalBatch(ctx, &pb.EvalBatchRequest{
		Batch: toProtoPairs(pairs),
		Beta:  beta,
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("eval batch rpc: %w", err)
	}
	return StepResult{
		PolicyChosen:   resp.PolicyChosenLogprobs,
		PolicyRejected: resp.PolicyRejectedLogprobs,
		RefChosen:      resp.ReferenceChosenLogprobs,
		RefRejected:    resp.ReferenceRejectedLogprobs,
	}, nil
}

// #endregion eval-batch

// #region state

// ExportState fetches the runtime-side trainable state blobs.
func (c *Client) ExportState(ctx context.Context) (Snapshot, error) {
	resp, err := c.client.ExportState(ctx, &pb.ExportStateRequest{})
	if err != nil {
		return Snapshot{}, fmt.Errorf("export state rpc: %w", err)
	}
	return Snapshot{
		Adapter:   resp.AdapterWeights,
		Optimizer: resp.OptimizerState,
		RNG:       resp.RngState,
	}, nil
}

// RestoreState reinstates previously exported state blobs.
func (c *Client) RestoreState(ctx context.Context, snap Snapshot) error {
	_, err := c.client.RestoreState(ctx, &pb.RestoreStateRequest{
		AdapterWeights: snap.Adapter,
		OptimizerState: snap.Optimizer,
		RngState:       snap.RNG,
	})
	if err != nil {
		return fmt.Errorf("restore state rpc: %w", err)
	}
	return nil
}

// #endregion state

// #region merge

// MergeAdapter folds the adapter into the base weights runtime-side.
func (c *Client) MergeAdapter(ctx context.Context, outputDir string) (string, error) {
	resp, err := c.client.MergeAdapter(ctx, &pb.MergeAdapterRequest{
		OutputDir: outputDir,
	})
	if err != nil {
		return "", fmt.Errorf("merge adapter rpc: %w", err)
	}
	return resp.MergedPath, nil
}

// #endregion merge

// #region helpers

func toProtoPairs(pairs []data.Pair) []*pb.PreferencePair {
	out := make([]*pb.PreferencePair, len(pairs))
	for i, p := range pairs {
		out[i] = &pb.PreferencePair{
			Prompt:   p.Prompt,
			Chosen:   p.Chosen,
			Rejected: p.Rejected,
		}
	}
	return out
}

// #endregion helpers
