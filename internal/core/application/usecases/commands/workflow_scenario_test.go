package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/core/application/exchange"
	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/core/domain/services"
	"decoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_QuoteToClosedAndReopen(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	quote := f.createQuote(t, tee(pricing.DTF), tee(pricing.Embroidery))
	id := quote.ID()
	assert.Equal(t, "TBD-0001", quote.OrderNumber())

	_, err := f.advance(t, id, false)
	require.NoError(t, err)
	o, err := f.advance(t, id, false)
	require.NoError(t, err)
	require.Equal(t, order.ArtConfirmation, o.Status())

	addPlacement := commands.NewAddArtPlacementCommandHandler(f.factory, clock())
	cmd, err := commands.NewAddArtPlacementCommand(id, art.PlacementInput{Location: "Front", ColorCount: 2}, actor)
	require.NoError(t, err)
	o, err = addPlacement.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtInProgress, o.ArtStatus())
	placementID := o.ArtConfirmation().Placements[0].ID

	proofID := addProof(t, f, id, placementID)
	sendProof(t, f, id, placementID, proofID)

	feedback := commands.NewRecordArtFeedbackCommandHandler(f.factory, clock())
	fbCmd, err := commands.NewRecordArtFeedbackCommand(id, placementID, proofID, "make the logo bigger")
	require.NoError(t, err)
	o, err = feedback.Handle(ctx, fbCmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtRevisionRequested, o.ArtStatus())

	_, err = f.advance(t, id, false)
	require.ErrorIs(t, err, errs.ErrInvalidTransition, "art must be approved")

	secondProof := addProof(t, f, id, placementID)
	sendProof(t, f, id, placementID, secondProof)
	approve := commands.NewApproveArtProofCommandHandler(f.factory, clock())
	apCmd, err := commands.NewApproveArtProofCommand(id, placementID, secondProof, actor)
	require.NoError(t, err)
	o, err = approve.Handle(ctx, apCmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtApproved, o.ArtStatus())
	assert.Equal(t, 2, o.ArtConfirmation().Placements[0].Proofs[1].Version)

	o, err = f.advance(t, id, false)
	require.NoError(t, err)
	require.Equal(t, order.InventoryOrder, o.Status())

	_, err = f.advance(t, id, false)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	f.progress(t, o, order.FlagOrdered)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	_, err = f.advance(t, id, false)
	require.ErrorIs(t, err, errs.ErrInvalidTransition, "gang sheet and digitizing are required")
	f.checklist(t, id, order.FlagGangSheetCreated, order.FlagDigitizingComplete)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	f.progress(t, o, order.FlagReceived)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	f.progress(t, o, order.FlagDecorated)
	f.progress(t, o, order.FlagPacked)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	f.checklist(t, id, order.FlagShippingLabelPrinted)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	f.checklist(t, id, order.FlagInvoiceCreated, order.FlagInvoiceSent)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	f.checklist(t, id, order.FlagFilesSaved, order.FlagCanvaArchived, order.FlagSummaryUploaded)
	o, err = f.advance(t, id, false)
	require.NoError(t, err)
	require.Equal(t, order.Closed, o.Status())
	assert.Equal(t, order.ClosedReasonCompleted, o.ClosedReason())
	require.NotNil(t, o.ClosedAt())

	reopen := commands.NewReopenOrderCommandHandler(f.factory, clock())
	reCmd, err := commands.NewReopenOrderCommand(id, order.Production, actor)
	require.NoError(t, err)
	o, err = reopen.Handle(ctx, reCmd)
	require.NoError(t, err)
	assert.Equal(t, order.Production, o.Status())
	assert.Nil(t, o.ClosedAt())
	assert.Equal(t, o.Version(), f.get(t, id).Version())
	assert.True(t, f.get(t, id).LineItems()[0].Packed, "reopen keeps production flags")
}

func TestWorkflow_ArtPendingThenFinalApproval(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createQuote(t, tee(pricing.ScreenPrint)).ID()
	_, err := f.advance(t, id, false)
	require.NoError(t, err)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	o, err := f.advance(t, id, true)
	require.NoError(t, err)
	assert.Equal(t, order.InventoryOrder, o.Status())
	assert.Equal(t, order.ArtPending, o.ArtStatus())

	notes := commands.NewUpdateArtNotesCommandHandler(f.factory, clock())
	nCmd, err := commands.NewUpdateArtNotesCommand(id, "waiting on vector file", actor)
	require.NoError(t, err)
	_, err = notes.Handle(ctx, nCmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition, "art is read-only outside Art Confirmation")

	final := commands.NewRecordFinalArtApprovalCommandHandler(f.factory, clock())
	fCmd, err := commands.NewRecordFinalArtApprovalCommand(id, "Pat Customer", "Phone", now, actor)
	require.NoError(t, err)
	o, err = final.Handle(ctx, fCmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtApproved, o.ArtStatus())
	assert.Equal(t, art.Approved, o.ArtConfirmation().OverallStatus)
	assert.Equal(t, "Pat Customer", o.ArtConfirmation().CustomerApprovalName)
}

func TestWorkflow_ArtFilesAndPlacementDeletion(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createQuote(t, tee(pricing.DTF)).ID()
	_, err := f.advance(t, id, false)
	require.NoError(t, err)
	_, err = f.advance(t, id, false)
	require.NoError(t, err)

	upload := commands.NewUploadClientFileCommandHandler(f.factory, clock())
	uCmd, err := commands.NewUploadClientFileCommand(id, art.FileInput{Name: "logo.ai", URL: "https://files.test/logo.ai"}, actor)
	require.NoError(t, err)
	o, err := upload.Handle(ctx, uCmd)
	require.NoError(t, err)
	require.Len(t, o.ArtConfirmation().ClientFiles, 1)
	assert.Equal(t, art.OriginalArt, o.ArtConfirmation().ClientFiles[0].Category)

	addPlacement := commands.NewAddArtPlacementCommandHandler(f.factory, clock())
	for _, location := range []string{"Front", "Back"} {
		cmd, cmdErr := commands.NewAddArtPlacementCommand(id, art.PlacementInput{Location: location, ColorCount: 1}, actor)
		require.NoError(t, cmdErr)
		o, err = addPlacement.Handle(ctx, cmd)
		require.NoError(t, err)
	}
	front := o.ArtConfirmation().Placements[0].ID
	back := o.ArtConfirmation().Placements[1].ID

	proofID := addProof(t, f, id, front)
	sendProof(t, f, id, front, proofID)

	markup := commands.NewUploadMarkupFileCommandHandler(f.factory, clock())
	mCmd, err := commands.NewUploadMarkupFileCommand(id, front, proofID, art.FileInput{Name: "notes.png", URL: "https://files.test/notes.png"}, actor)
	require.NoError(t, err)
	o, err = markup.Handle(ctx, mCmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtRevisionRequested, o.ArtStatus())

	approveCmd, err := commands.NewApproveArtProofCommand(id, front, proofID, actor)
	require.NoError(t, err)
	approve := commands.NewApproveArtProofCommandHandler(f.factory, clock())
	o, err = approve.Handle(ctx, approveCmd)
	require.NoError(t, err)
	assert.NotEqual(t, order.ArtApproved, o.ArtStatus(), "the back placement has no approved proof")

	del := commands.NewDeleteArtPlacementCommandHandler(f.factory, clock())
	dCmd, err := commands.NewDeleteArtPlacementCommand(id, back, actor)
	require.NoError(t, err)
	o, err = del.Handle(ctx, dCmd)
	require.NoError(t, err)
	assert.Equal(t, order.ArtApproved, o.ArtStatus())
}

func TestWorkflow_MoveBackAndPermanentArchive(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createQuote(t, tee(pricing.OtherDecoration)).ID()
	_, err := f.advance(t, id, false)
	require.NoError(t, err)

	moveBack := commands.NewMoveBackOrderCommandHandler(f.factory, clock())
	mbCmd, err := commands.NewMoveBackOrderCommand(id, actor)
	require.NoError(t, err)
	o, err := moveBack.Handle(ctx, mbCmd)
	require.NoError(t, err)
	assert.Equal(t, order.Quote, o.Status())

	archive := commands.NewArchiveOrderCommandHandler(f.factory, clock())
	aCmd, err := commands.NewArchiveOrderCommand(id, actor)
	require.NoError(t, err)
	_, err = archive.Handle(ctx, aCmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition, "only closed orders are archived")

	permanent := commands.NewPermanentlyArchiveOrderCommandHandler(f.factory, clock())
	pCmd, err := commands.NewPermanentlyArchiveOrderCommand(id, actor)
	require.NoError(t, err)
	o, err = permanent.Handle(ctx, pCmd)
	require.NoError(t, err)
	assert.True(t, o.IsPermanentlyArchived())

	_, err = f.advance(t, id, false)
	require.Error(t, err)
	assert.True(t, f.get(t, id).IsPermanentlyArchived())
}

func TestWorkflow_DeadOpportunitySpawnsLead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	quote := f.createQuote(t, tee(pricing.DTF))

	h := commands.NewArchiveDeadOpportunityCommandHandler(f.factory, clock(), services.NewDeadOpportunityArchiver())
	cmd, err := commands.NewArchiveDeadOpportunityCommand(quote.ID(), true, "went with another shop", actor)
	require.NoError(t, err)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Archived.IsArchived())
	assert.Equal(t, order.ClosedReasonDeadOpportunity, result.Archived.ClosedReason())
	require.NotNil(t, result.Lead)
	assert.Equal(t, "LEAD-0002", result.Lead.OrderNumber())
	assert.Equal(t, order.Lead, result.Lead.Status())
	assert.Equal(t, quote.Customer(), result.Lead.Customer())
	assert.True(t, quote.Total().Equal(result.Lead.LeadInfo().EstimatedValue))
	assert.Equal(t, 2, f.store.Len())

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition, "a dead opportunity cannot be archived twice")
	assert.Equal(t, 2, f.store.Len())
}

func TestWorkflow_UpdateOrderIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	quote := f.createQuote(t, tee(pricing.DTF))
	h := commands.NewUpdateOrderCommandHandler(f.factory, clock())

	notes := "rush job"
	bad := tee(pricing.DTF)
	bad.Name = ""
	cmd, err := commands.NewUpdateOrderCommand(quote.ID(), order.Details{Notes: &notes},
		commands.LineItemChanges{Add: []order.LineItemInput{bad}}, actor)
	require.NoError(t, err)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	stored := f.get(t, quote.ID())
	assert.Empty(t, stored.Notes())
	assert.Equal(t, 1, stored.Version())

	cmd, err = commands.NewUpdateOrderCommand(quote.ID(), order.Details{Notes: &notes},
		commands.LineItemChanges{
			Add:    []order.LineItemInput{tee(pricing.ScreenPrint)},
			Remove: []kernel.UUID{quote.LineItems()[0].ID},
		}, actor)
	require.NoError(t, err)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "rush job", updated.Notes())
	require.Len(t, updated.LineItems(), 1)
	assert.Equal(t, pricing.ScreenPrint, updated.LineItems()[0].DecorationType)
	assert.Equal(t, 2, f.get(t, quote.ID()).Version())

	_, err = commands.NewUpdateOrderCommand(quote.ID(), order.Details{}, commands.LineItemChanges{}, actor)
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}

func TestWorkflow_UpdateOrderKeepsLastLineItemPastQuote(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	quote := f.createQuote(t, tee(pricing.DTF))
	for _, withArtPending := range []bool{false, false, true} {
		_, err := f.advance(t, quote.ID(), withArtPending)
		require.NoError(t, err)
	}
	before := f.get(t, quote.ID())
	require.Equal(t, order.InventoryOrder, before.Status())

	cmd, err := commands.NewUpdateOrderCommand(quote.ID(), order.Details{},
		commands.LineItemChanges{Remove: []kernel.UUID{quote.LineItems()[0].ID}}, actor)
	require.NoError(t, err)
	updateHandler := commands.NewUpdateOrderCommandHandler(f.factory, clock())
	_, err = updateHandler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	stored := f.get(t, quote.ID())
	assert.Len(t, stored.LineItems(), 1)
	assert.Equal(t, before.Version(), stored.Version())
}

func TestWorkflow_NoOpProgressKeepsVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	quote := f.createQuote(t, tee(pricing.DTF))
	h := commands.NewUpdateLineItemProgressCommandHandler(f.factory, clock())

	cmd, err := commands.NewUpdateLineItemProgressCommand(quote.ID(), quote.LineItems()[0].ID, order.FlagPacked, true)
	require.NoError(t, err)
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, o.LineItems()[0].Packed)
	assert.Equal(t, 1, f.get(t, quote.ID()).Version())
}

func TestImportDatabase(t *testing.T) {
	ctx := context.Background()
	source := newFixture()
	first := source.createQuote(t, tee(pricing.DTF))
	second := source.createQuote(t, tee(pricing.Embroidery))

	bundle := exchange.NewBundle([]order.Snapshot{first.Snapshot(), second.Snapshot()}, now)
	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	target := newFixture()
	existing := target.createQuote(t)
	h := commands.NewImportDatabaseCommandHandler(target.factory)

	cmd, err := commands.NewImportDatabaseCommand(data)
	require.NoError(t, err)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.True(t, result.Report.Valid)
	assert.Equal(t, 2, target.store.Len())
	_, err = memory.NewOrderRepository(target.store).Get(ctx, existing.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "import replaces the store")
	restored := target.get(t, first.ID())
	assert.Equal(t, first.OrderNumber(), restored.OrderNumber())
	assert.Equal(t, first.Version(), restored.Version())
	assert.True(t, first.Total().Equal(restored.Total()))
}

func TestImportDatabase_InvalidBundleLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	source := newFixture()
	quote := source.createQuote(t, tee(pricing.DTF))
	dup := quote.Snapshot()
	bundle := exchange.NewBundle([]order.Snapshot{quote.Snapshot(), dup}, now)
	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	target := newFixture()
	existing := target.createQuote(t)
	h := commands.NewImportDatabaseCommandHandler(target.factory)
	cmd, err := commands.NewImportDatabaseCommand(data)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.False(t, result.Report.Valid)
	assert.Equal(t, 1, target.store.Len())
	target.get(t, existing.ID())

	_, err = commands.NewImportDatabaseCommand([]byte(`{"metadata":{"schemaVersion":"2.0.0"},"orders":[]}`))
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func addProof(t *testing.T, f fixture, orderID, placementID kernel.UUID) kernel.UUID {
	t.Helper()
	h := commands.NewAddArtProofCommandHandler(f.factory, clock())
	cmd, err := commands.NewAddArtProofCommand(orderID, placementID, art.ProofInput{ProofURL: "https://proofs.test/p.png"}, actor)
	require.NoError(t, err)
	o, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	for _, p := range o.ArtConfirmation().Placements {
		if p.ID == placementID {
			return p.Proofs[len(p.Proofs)-1].ID
		}
	}
	t.Fatalf("placement %s not found", placementID)
	return kernel.UUID{}
}

func sendProof(t *testing.T, f fixture, orderID, placementID, proofID kernel.UUID) {
	t.Helper()
	h := commands.NewSendArtProofCommandHandler(f.factory, clock())
	cmd, err := commands.NewSendArtProofCommand(orderID, placementID, proofID, actor)
	require.NoError(t, err)
	_, err = h.Handle(context.Background(), cmd)
	require.NoError(t, err)
}
