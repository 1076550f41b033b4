package runtime

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/pref-align/go-trainer/gen/runtimepb"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
)

// #region mock

type mockRuntimeService struct {
	pb.RuntimeServiceClient

	loadResp *pb.LoadModelResponse
	loadErr  error

	trainReq  *pb.TrainStepRequest
	trainResp *pb.TrainStepResponse
	trainErr  error

	evalResp *pb.EvalBatchResponse
	evalErr  error

	exportResp *pb.ExportStateResponse
	exportErr  error

	restoreReq *pb.RestoreStateRequest
	restoreErr error

	mergeResp *pb.MergeAdapterResponse
	mergeErr  error
}

func (m *mockRuntimeService) LoadModel(_ context.Context, _ *pb.LoadModelRequest, _ ...grpc.CallOption) (*pb.LoadModelResponse, error) {
	return m.loadResp, m.loadErr
}

func (m *mockRuntimeService) TrainStep(_ context.Context, req *pb.TrainStepRequest, _ ...grpc.CallOption) (*pb.TrainStepResponse, error) {
	m.trainReq = req
	return m.trainResp, m.trainErr
}

func (m *mockRuntimeService) EvalBatch(_ context.Context, _ *pb.EvalBatchRequest, _ ...grpc.CallOption) (*pb.EvalBatchResponse, error) {
	return m.evalResp, m.evalErr
}

func (m *mockRuntimeService) ExportState(_ context.Context, _ *pb.ExportStateRequest, _ ...grpc.CallOption) (*pb.ExportStateResponse, error) {
	return m.exportResp, m.exportErr
}

func (m *mockRuntimeService) RestoreState(_ context.Context, req *pb.RestoreStateRequest, _ ...grpc.CallOption) (*pb.RestoreStateResponse, error) {
	m.restoreReq = req
	return &pb.RestoreStateResponse{}, m.restoreErr
}

func (m *mockRuntimeService) MergeAdapter(_ context.Context, _ *pb.MergeAdapterRequest, _ ...grpc.CallOption) (*pb.MergeAdapterResponse, error) {
	return m.mergeResp, m.mergeErr
}

// #endregion mock

// #region constructor-tests

func TestNewClientDoesNotDialEagerly(t *testing.T) {
	client, err := NewClient("localhost:0")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	defer client.Close()
}

func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockRuntimeService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close without conn: %v", err)
	}
}

// #endregion constructor-tests

// #region rpc-tests

func TestLoadModelSuccess(t *testing.T) {
	mock := &mockRuntimeService{
		loadResp: &pb.LoadModelResponse{ModelHash: "abc123", ParamCount: 494000000},
	}
	c := NewClientWithService(mock)

	info, err := c.LoadModel(context.Background(), "test-model", 4, "lora", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ModelHash != "abc123" {
		t.Errorf("expected hash abc123, got %q", info.ModelHash)
	}
	if info.ParamCount != 494000000 {
		t.Errorf("expected param count, got %d", info.ParamCount)
	}
}

func TestLoadModelError(t *testing.T) {
	c := NewClientWithService(&mockRuntimeService{loadErr: errors.New("oom")})
	if _, err := c.LoadModel(context.Background(), "m", 4, "lora", 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestTrainStepMarshalsBatch(t *testing.T) {
	mock := &mockRuntimeService{
		trainResp: &pb.TrainStepResponse{
			PolicyChosenLogprobs:      []float64{-9.5},
			PolicyRejectedLogprobs:    []float64{-10.5},
			ReferenceChosenLogprobs:   []float64{-10},
			ReferenceRejectedLogprobs: []float64{-10},
			GradNorm:                  0.7,
		},
	}
	c := NewClientWithService(mock)

	pairs := []data.Pair{{Prompt: "p", Chosen: "c", Rejected: "r"}}
	res, err := c.TrainStep(context.Background(), 3, pairs, 0.1, 5e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PolicyChosen[0] != -9.5 || res.GradNorm != 0.7 {
		t.Errorf("response not mapped: %+v", res)
	}

	req := mock.trainReq
	if req.Step != 3 || req.Beta != 0.1 || req.LearningRate != 5e-5 {
		t.Errorf("request fields not mapped: %+v", req)
	}
	if len(req.Batch) != 1 || req.Batch[0].Prompt != "p" || req.Batch[0].Rejected != "r" {
		t.Errorf("batch not mapped: %+v", req.Batch)
	}
}

func TestTrainStepError(t *testing.T) {
	c := NewClientWithService(&mockRuntimeService{trainErr: errors.New("cuda out of memory")})
	if _, err := c.TrainStep(context.Background(), 1, nil, 0.1, 5e-5); err == nil {
		t.Fatal("expected error")
	}
}

func TestEvalBatchSuccess(t *testing.T) {
	mock := &mockRuntimeService{
		evalResp: &pb.EvalBatchResponse{
			PolicyChosenLogprobs:      []float64{-9},
			PolicyRejectedLogprobs:    []float64{-11},
			ReferenceChosenLogprobs:   []float64{-10},
			ReferenceRejectedLogprobs: []float64{-10},
		},
	}
	c := NewClientWithService(mock)

	res, err := c.EvalBatch(context.Background(), []data.Pair{{Prompt: "p", Chosen: "c", Rejected: "r"}}, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PolicyRejected[0] != -11 {
		t.Errorf("response not mapped: %+v", res)
	}
	if res.GradNorm != 0 {
		t.Errorf("eval must not report a grad norm, got %g", res.GradNorm)
	}
}

func TestStateRoundTripMapping(t *testing.T) {
	mock := &mockRuntimeService{
		exportResp: &pb.ExportStateResponse{
			AdapterWeights: []byte("adapter"),
			OptimizerState: []byte("optimizer"),
			RngState:       []byte("rng"),
		},
	}
	c := NewClientWithService(mock)

	snap, err := c.ExportState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(snap.Adapter) != "adapter" || string(snap.RNG) != "rng" {
		t.Errorf("snapshot not mapped: %+v", snap)
	}

	if err := c.RestoreState(context.Background(), snap); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if string(mock.restoreReq.OptimizerState) != "optimizer" {
		t.Errorf("restore request not mapped: %+v", mock.restoreReq)
	}
}

func TestMergeAdapterSuccess(t *testing.T) {
	c := NewClientWithService(&mockRuntimeService{
		mergeResp: &pb.MergeAdapterResponse{MergedPath: "out/merged"},
	})
	path, err := c.MergeAdapter(context.Background(), "out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "out/merged" {
		t.Errorf("expected merged path, got %q", path)
	}
}

// #endregion rpc-tests
