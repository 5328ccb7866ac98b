// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/paths"
)

// ApplyContract - store a new contract and the trees of its document
// types; the contract owner pays
func (b *Block) ApplyContract(c *contract.Contract) (*fee.FeeResult, error) {
	if _, ok := b.contracts[c.ID]; ok {
		return nil, fault.ErrContractAlreadyExists
	}

	o := b.newOps()
	err := o.insertNew([][]byte{{paths.DataContractDocuments}}, c.ID.Bytes(), grove.NewTree(nil), fault.ErrContractAlreadyExists)
	if nil != err {
		return nil, err
	}

	contractPath := paths.ContractPath(c.ID)
	o.insert(contractPath, paths.ContractKey, grove.NewItem(c.Serialize(), o.flags(c.Owner)))
	o.insert(contractPath, paths.DocumentTypesKey, grove.NewTree(nil))

	typesPath := grove.Extend(contractPath, paths.DocumentTypesKey)
	for _, name := range c.TypeNames() {
		t := c.DocumentTypes[name]
		o.insert(typesPath, []byte(name), grove.NewTree(nil))

		typePath := paths.DocumentTypePath(c.ID, name)
		o.insert(typePath, paths.PrimaryStorageKey, grove.NewTree(nil))
		if nil != t.ContestedIndex() {
			o.insert(typePath, paths.ContestedStorageKey, grove.NewTree(nil))
		}
	}

	result, err := b.apply(o, c.Owner)
	if nil != err {
		return nil, err
	}
	b.contracts[c.ID] = c
	b.drive.log.Infof("contract: %s  types: %v", c.ID, c.TypeNames())
	return result, nil
}
