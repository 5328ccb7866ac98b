// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/version"
	"github.com/bitmark-inc/drived/vote"
)

// Resolution - how an ended poll was decided
type Resolution struct {
	Poll     vote.Poll
	Decision vote.Decision
}

// enter doc as a contender for the contested value tuple
//
// the first contender opens the contest: its tally trees, its end date
// entry and its specialized balance
func (o *opBuilder) addContender(c *contract.Contract, t *contract.DocumentType, index *contract.Index, values [][]byte, doc *document.Document, timeMs uint64, pv *version.PlatformVersion) error {
	poll := &vote.Poll{
		ContractID:   c.ID,
		DocumentType: t.Name,
		IndexName:    index.Name,
		IndexValues:  values,
	}
	pollID := poll.ID()

	decision, err := proof.ReadDecision(o, pollID)
	if nil != err {
		return err
	}
	if nil != decision {
		switch decision.Outcome {
		case vote.Won:
			return fault.ErrContestAlreadyResolved
		case vote.Locked:
			return fault.ErrContestLocked
		default:
			// nobody won, the resource is open again
			existing, err := o.Get(paths.DecisionsPath(), pollID.Bytes())
			if nil != err {
				return err
			}
			if err := o.remove(paths.DecisionsPath(), pollID.Bytes(), existing); nil != err {
				return err
			}
		}
	}

	primary, err := o.Get(paths.PrimaryStoragePath(c.ID, t.Name), doc.ID.Bytes())
	if nil != err {
		return err
	}
	if nil != primary {
		return fault.ErrDocumentAlreadyExists
	}
	value, err := doc.Serialize()
	if nil != err {
		return err
	}
	contested := paths.ContestedStoragePath(c.ID, t.Name)
	item := grove.NewItem(value, o.flags(doc.Owner))
	if err := o.insertNew(contested, doc.ID.Bytes(), item, fault.ErrDocumentAlreadyExists); nil != err {
		return err
	}

	// property and value trees down to the contest
	path := paths.DocumentTypePath(c.ID, t.Name)
	for i, p := range index.Properties {
		if err := o.ensureTree(path, []byte(p.Name)); nil != err {
			return err
		}
		path = grove.Extend(path, []byte(p.Name))
		if err := o.ensureTree(path, values[i]); nil != err {
			return err
		}
		path = grove.Extend(path, values[i])
	}
	contest := grove.Extend(path, paths.TerminalKey)

	terminal, err := o.Get(path, paths.TerminalKey)
	if nil != err {
		return err
	}
	switch {
	case nil == terminal:
		if err := o.openContest(path, poll, timeMs+pv.Voting.ContestDurationMs); nil != err {
			return err
		}
	case !terminal.IsTree():
		return fault.ErrContestAlreadyResolved
	}

	err = o.insertNew(contest, doc.Owner.Bytes(), grove.NewSumTree(nil), fault.ErrCorruptedContestedSubTreeExists)
	if nil != err {
		return err
	}
	contender := paths.ContenderPath(contest, doc.Owner)
	o.insert(contender, paths.ContenderReferenceKey, grove.NewReference(contested, doc.ID.Bytes(), nil))
	o.insert(contender, paths.VoteAccumulatorKey, grove.NewSumTree(nil))

	o.transfers = append(o.transfers, transfer{
		from:   doc.Owner,
		pollID: pollID,
		amount: pv.Voting.ContenderFee,
	})
	return nil
}

func (o *opBuilder) openContest(valuePath [][]byte, poll *vote.Poll, endMs uint64) error {
	err := o.insertNew(valuePath, paths.TerminalKey, grove.NewTree(nil), fault.ErrCorruptedContestedTreeExists)
	if nil != err {
		return err
	}
	contest := grove.Extend(valuePath, paths.TerminalKey)
	o.insert(contest, paths.AbstainKey, grove.NewSumTree(nil))
	o.insert(contest, paths.LockKey, grove.NewSumTree(nil))

	pollID := poll.ID()
	if err := o.ensureTree(paths.EndDatePath(), paths.EndDateKeyFor(endMs)); nil != err {
		return err
	}
	err = o.insertNew(paths.EndDateTimePath(endMs), pollID.Bytes(), grove.NewItem(poll.Serialize(), nil), fault.ErrCorruptedContestedTreeExists)
	if nil != err {
		return err
	}
	return o.insertNew(paths.SpecializedBalancesPath(), pollID.Bytes(), grove.NewSumItem(0, nil), fault.ErrCorruptedContestedTreeExists)
}

// sum tree a choice adds its voter to
func (o *opBuilder) choiceTarget(contest [][]byte, choice vote.Choice) ([][]byte, error) {
	switch choice.Kind {
	case vote.TowardsIdentity:
		e, err := o.Get(contest, choice.Identity.Bytes())
		if nil != err {
			return nil, err
		}
		if nil == e {
			return nil, fault.ErrInvalidVoteChoice
		}
		return paths.VoterPath(contest, choice.Identity), nil
	case vote.Abstain:
		return grove.Extend(contest, paths.AbstainKey), nil
	case vote.Lock:
		return grove.Extend(contest, paths.LockKey), nil
	default:
		return nil, fault.ErrInvalidVoteChoice
	}
}

// RegisterIdentityVote - record or change the vote of one voter
//
// each vote is paid from the poll's specialized balance while it lasts
func (b *Block) RegisterIdentityVote(voter identifier.Identifier, rv *vote.ResourceVote) error {
	switch b.platform.Vote.RegisterIdentityVote {
	case 0:
	default:
		return fault.ErrUnknownMethodVersion
	}
	c, err := b.contract(rv.Poll.ContractID)
	if nil != err {
		return err
	}

	o := b.newOps()
	if err := o.registerVote(c, voter, rv, b.platform); nil != err {
		return err
	}
	if err := b.tx.Apply(o.batch); nil != err {
		return err
	}
	b.drive.log.Debugf("vote: %s  poll: %s  choice: %s", voter, rv.Poll.ID(), rv.Choice)
	return nil
}

func (o *opBuilder) registerVote(c *contract.Contract, voter identifier.Identifier, rv *vote.ResourceVote, pv *version.PlatformVersion) error {
	_, _, contest, err := proof.ContestLocation(c, &rv.Poll)
	if nil != err {
		return err
	}
	pollID := rv.Poll.ID()

	decision, err := proof.ReadDecision(o, pollID)
	if nil != err {
		return err
	}
	if nil != decision {
		return fault.ErrContestAlreadyResolved
	}
	root, err := o.Get(contest[:len(contest)-1], contest[len(contest)-1])
	if nil != err {
		return err
	}
	if nil == root || !root.IsTree() {
		return fault.ErrVotePollNotFound
	}

	target, err := o.choiceTarget(contest, rv.Choice)
	if nil != err {
		return err
	}

	if err := o.ensureTree(paths.AllIdentityVotesPath(), voter.Bytes()); nil != err {
		return err
	}
	votes := paths.IdentityVotesPath(voter)
	previous, err := o.Get(votes, pollID.Bytes())
	if nil != err {
		return err
	}
	if nil != previous {
		if grove.ItemElement != previous.Type {
			return fault.ErrCorruptedElementType
		}
		old, err := vote.DeserializeResourceVote(previous.Value)
		if nil != err {
			return err
		}
		if old.Choice.Equal(rv.Choice) {
			return fault.ErrVoteAlreadyCast
		}
		oldTarget, err := o.choiceTarget(contest, old.Choice)
		if nil != err {
			return err
		}
		counted, err := o.Get(oldTarget, voter.Bytes())
		if nil != err {
			return err
		}
		if nil != counted {
			if err := o.remove(oldTarget, voter.Bytes(), counted); nil != err {
				return err
			}
		}
	}

	o.insert(target, voter.Bytes(), grove.NewSumItem(1, nil))
	if err := o.upsert(votes, pollID.Bytes(), grove.NewItem(rv.Serialize(), nil)); nil != err {
		return err
	}
	return o.payVote(pollID, pv)
}

// move the vote cost out of the poll's balance
func (o *opBuilder) payVote(pollID identifier.Identifier, pv *version.PlatformVersion) error {
	balance, err := o.Get(paths.SpecializedBalancesPath(), pollID.Bytes())
	if nil != err {
		return err
	}
	if nil == balance {
		return fault.ErrVotePollNotFound
	}
	if grove.SumItemElement != balance.Type || balance.Sum < 0 {
		return fault.ErrCorruptedElementType
	}
	amount, err := signed(pv.Voting.VoteCost)
	if nil != err {
		return err
	}
	if balance.Sum < amount {
		amount = balance.Sum
	}
	if 0 == amount {
		return nil
	}
	err = o.adjust(paths.SpecializedBalancesPath(), pollID.Bytes(), -amount, fault.ErrVotePollNotFound, fault.ErrCorruptedSolvency)
	if nil != err {
		return err
	}
	return o.adjustPool(paths.ProcessingPoolKey, amount)
}

// ResolveEndedPolls - decide every poll whose end time has passed
//
// a winner's document moves to primary storage with all its indexes;
// all poll state is removed except the decision
func (b *Block) ResolveEndedPolls() ([]Resolution, error) {
	switch b.platform.Vote.ResolveEndedPolls {
	case 0:
	default:
		return nil, fault.ErrUnknownMethodVersion
	}

	now := b.info.TimeMs
	o := b.newOps()
	ended, err := proof.ReadVotePollsByEndDate(o, &proof.EndDateQuery{
		End:         &now,
		EndIncluded: true,
		Ascending:   true,
	})
	if nil != err {
		return nil, err
	}

	resolutions := []Resolution{}
	for _, group := range ended {
		for _, poll := range group.Polls {
			decision, err := b.resolvePoll(o, poll)
			if nil != err {
				b.drive.log.Errorf("resolve poll: %s  error: %s", poll.ID(), err)
				return nil, err
			}
			resolutions = append(resolutions, Resolution{
				Poll:     *poll,
				Decision: *decision,
			})
		}
		key := paths.EndDateKeyFor(group.TimeMs)
		existing, err := o.Get(paths.EndDatePath(), key)
		if nil != err {
			return nil, err
		}
		if nil != existing {
			if err := o.removeTree(paths.EndDatePath(), key, existing); nil != err {
				return nil, err
			}
		}
	}
	if 0 == o.batch.Len() {
		return resolutions, nil
	}
	if err := b.tx.Apply(o.batch); nil != err {
		return nil, fault.Corrupted(err, "resolve polls: %d ops", o.batch.Len())
	}
	for _, r := range resolutions {
		b.drive.log.Infof("poll: %s  outcome: %s  winner: %s", r.Poll.ID(), r.Decision.Outcome, r.Decision.Winner)
	}
	return resolutions, nil
}

func (b *Block) resolvePoll(o *opBuilder, poll *vote.Poll) (*vote.Decision, error) {
	c, err := b.contract(poll.ContractID)
	if nil != err {
		return nil, err
	}
	t, _, contest, err := proof.ContestLocation(c, poll)
	if nil != err {
		return nil, err
	}
	state, err := proof.ReadVoteState(o, c, poll, false)
	if nil != err {
		return nil, err
	}
	if nil == state || nil != state.Decision {
		return nil, fault.ErrCorruptedContestedTreeExists
	}
	pollID := poll.ID()

	// voter records
	tallies := [][][]byte{
		grove.Extend(contest, paths.AbstainKey),
		grove.Extend(contest, paths.LockKey),
	}
	for _, contender := range state.Contenders {
		tallies = append(tallies, paths.VoterPath(contest, contender.Identity))
	}
	for _, tally := range tallies {
		if err := o.removeVoteRecords(tally, pollID); nil != err {
			return nil, err
		}
	}

	// contested documents leave contested storage, the winner's moves
	documents := make(map[identifier.Identifier]*document.Document, len(state.Contenders))
	for _, contender := range state.Contenders {
		doc, err := o.removeContestedDocument(contest, contender.Identity)
		if nil != err {
			return nil, err
		}
		documents[contender.Identity] = doc
	}
	outcome, winner, err := b.eligibleOutcome(o, c, t, state, documents)
	if nil != err {
		return nil, err
	}
	winning := documents[winner]

	root, err := o.Get(contest[:len(contest)-1], contest[len(contest)-1])
	if nil != err {
		return nil, err
	}
	if nil == root {
		return nil, fault.ErrCorruptedReference
	}
	if err := o.removeTree(contest[:len(contest)-1], contest[len(contest)-1], root); nil != err {
		return nil, err
	}

	if vote.Won == outcome {
		if nil == winning {
			return nil, fault.ErrCorruptedReference
		}
		if err := o.addDocument(c, t, winning, true, b.info.TimeMs, b.platform); nil != err {
			return nil, err
		}
	}

	decision := &vote.Decision{
		Outcome:     outcome,
		Winner:      winner,
		FinishedAt:  b.info.TimeMs,
		BlockHeight: b.info.Height,
	}
	err = o.upsert(paths.DecisionsPath(), pollID.Bytes(), grove.NewItem(decision.Serialize(), nil))
	if nil != err {
		return nil, err
	}

	// whatever the votes did not use goes to the processing pool
	balance, err := o.Get(paths.SpecializedBalancesPath(), pollID.Bytes())
	if nil != err {
		return nil, err
	}
	if nil != balance {
		if grove.SumItemElement != balance.Type || balance.Sum < 0 {
			return nil, fault.ErrCorruptedElementType
		}
		if err := o.remove(paths.SpecializedBalancesPath(), pollID.Bytes(), balance); nil != err {
			return nil, err
		}
		if err := o.adjustPool(paths.ProcessingPoolKey, balance.Sum); nil != err {
			return nil, err
		}
	}
	return decision, nil
}

func (o *opBuilder) removeVoteRecords(tally [][]byte, pollID identifier.Identifier) error {
	voters, err := o.Query(tally, grove.AllKeys())
	if nil != err {
		return err
	}
	for _, ke := range voters {
		voter, err := identifier.FromBytes(ke.Key)
		if nil != err {
			return fault.ErrCorruptedElementType
		}
		votes := paths.IdentityVotesPath(voter)
		record, err := o.Get(votes, pollID.Bytes())
		if nil != err {
			return err
		}
		if nil == record {
			continue
		}
		if err := o.remove(votes, pollID.Bytes(), record); nil != err {
			return err
		}
	}
	return nil
}

func (o *opBuilder) removeContestedDocument(contest [][]byte, contender identifier.Identifier) (*document.Document, error) {
	path := paths.ContenderPath(contest, contender)
	ref, err := o.Get(path, paths.ContenderReferenceKey)
	if nil != err {
		return nil, err
	}
	if nil == ref || grove.ReferenceElement != ref.Type {
		return nil, fault.ErrCorruptedReference
	}
	docPath, docKey := ref.Ref.Resolve(path)
	e, err := o.Get(docPath, docKey)
	if nil != err {
		return nil, err
	}
	if nil == e || grove.ItemElement != e.Type {
		return nil, fault.ErrCorruptedReference
	}
	doc, err := document.Deserialize(e.Value)
	if nil != err {
		return nil, err
	}
	if err := o.remove(docPath, docKey, e); nil != err {
		return nil, err
	}
	return doc, nil
}

// outcome of state among contenders whose document can still take its
// unique values
//
// a unique value may have been taken outside the contest while it ran,
// such a winner is disqualified and the votes are counted again without it
func (b *Block) eligibleOutcome(o *opBuilder, c *contract.Contract, t *contract.DocumentType, state *vote.ContestState, documents map[identifier.Identifier]*document.Document) (vote.Outcome, identifier.Identifier, error) {
	remaining := *state
	remaining.Contenders = append([]vote.Contender{}, state.Contenders...)
	for {
		outcome, winner := remaining.Outcome()
		if vote.Won != outcome {
			return outcome, winner, nil
		}
		doc := documents[winner]
		if nil == doc {
			return outcome, winner, fault.ErrCorruptedReference
		}
		err := validateUniqueness(o.view(), c, t, doc)
		switch err {
		case nil:
			return outcome, winner, nil
		case fault.ErrDuplicateUniqueIndex:
			b.drive.log.Warnf("contender: %s  disqualified: %s", winner, err)
		default:
			return outcome, winner, err
		}
		for i, contender := range remaining.Contenders {
			if contender.Identity == winner {
				remaining.Contenders = append(remaining.Contenders[:i], remaining.Contenders[i+1:]...)
				break
			}
		}
	}
}
