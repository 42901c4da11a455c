package eth

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

func GetEthClient(log *logrus.Entry, rpcUrl string) (client *ethclient.Client, err error) {
	client, err = ethclient.Dial(rpcUrl)
	if err != nil {
		log.WithError(err).WithField("rpc_url", rpcUrl).Error("Cannot get ETH client")
		return
	}

	return
}

// GetTransactionLog finds the named event in the receipt and decodes both the
// indexed topics and the data segment into one map
func GetTransactionLog(receipt *types.Receipt, contractABI *abi.ABI, name string) (eventMap map[string]interface{}, err error) {
	for _, vLog := range receipt.Logs {
		event, err := contractABI.EventByID(vLog.Topics[0])
		if err != nil {
			continue
		}

		if event.Name == name {
			eventMap := make(map[string]interface{})

			indexed := make([]abi.Argument, 0)
			for _, input := range event.Inputs {
				if input.Indexed {
					indexed = append(indexed, input)
				}
			}
			err := abi.ParseTopicsIntoMap(eventMap, indexed, vLog.Topics[1:])
			if err != nil {
				return nil, err
			}

			if len(vLog.Data) > 0 {
				err = contractABI.UnpackIntoMap(eventMap, event.Name, vLog.Data)
				if err != nil {
					return nil, err
				}
			}
			return eventMap, nil
		}
	}

	err = errors.New("desired transaction log not found")
	return
}

// DecodeEventLog decodes a single raw log entry, used when scanning filtered logs
func DecodeEventLog(vLog *types.Log, contractABI *abi.ABI, name string) (eventMap map[string]interface{}, err error) {
	event, err := contractABI.EventByID(vLog.Topics[0])
	if err != nil {
		return
	}

	if event.Name != name {
		err = errors.New("unexpected event name")
		return
	}

	eventMap = make(map[string]interface{})

	indexed := make([]abi.Argument, 0)
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	err = abi.ParseTopicsIntoMap(eventMap, indexed, vLog.Topics[1:])
	if err != nil {
		return
	}

	if len(vLog.Data) > 0 {
		err = contractABI.UnpackIntoMap(eventMap, event.Name, vLog.Data)
		if err != nil {
			return
		}
	}
	return
}
