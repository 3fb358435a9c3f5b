package hotelx

// The GraphQL documents below are fixed; only their variables change per
// call. Field selections match what the projection tables consume.

// hotelListQuery lists the hotels reachable under an access code.
const hotelListQuery = `
query ($criteria: HotelXHotelListInput!, $relay: RelayInput!) {
  hotelX {
    hotels (
        criteria: $criteria,
        relay: $relay
    ){
        edges {
            node {
                code
                hotelData {
                    code
                    hotelCode
                    hotelCodeSupplier
                    hotelName
                }
            }
        }
    }
  }
}
`

// availabilityQuery searches bookable options for a stay window.
const availabilityQuery = `
query ($criteria: HotelCriteriaSearchInput!, $settings: HotelSettingsInput, $filter: HotelXFilterSearchInput) {
  hotelX {
    search(
      criteria: $criteria,
      settings: $settings,
      filterSearch: $filter
    ) {
      options {
        id
        hotelName
        hotelCode
        supplierCode
        paymentType
        status
        boardCode
        occupancies {
          id
          paxes {
            age
          }
        }
        rooms {
          occupancyRefId
          code
          description
          beds {
            type
            count
          }
          roomPrice {
            price {
              currency
              binding
              net
              gross
            }
          }
        }
        price {
          currency
          binding
          net
          gross
          exchange {
            currency
            rate
          }
        }
        surcharges {
          chargeType
          description
          mandatory
          price {
            currency
            binding
            net
            gross
          }
        }
        cancelPolicy {
          refundable
          cancelPenalties {
            hoursBefore
            penaltyType
            currency
            value
          }
        }
      }
      errors {
        code
        type
        description
      }
      warnings {
        code
        type
        description
      }
    }
  }
}
`

// quoteQuery exchanges an availability option reference for a priced quote.
const quoteQuery = `
query ($criteria: HotelCriteriaQuoteInput!, $settings: HotelSettingsInput) {
  hotelX {
    quote(
      criteria: $criteria,
        settings: $settings
      ) {
      auditData {
        transactions {
          request
          response
        }
      }
      optionQuote {
        addOns {
          distribution {
            value
            key
          }
        }
        searchPrice {
          currency
          net
          gross
          binding
        }
        optionRefId
        status
        price {
          currency
          binding
          net
          gross
          exchange {
            currency
            rate
          }
          markups {
            channel
            currency
            binding
            net
            gross
            exchange {
              currency
              rate
            }
            rules {
              id
              name
              type
              value
            }
          }
        }
        cancelPolicy {
          refundable
          cancelPenalties {
            hoursBefore
            penaltyType
            currency
            value
          }
        }
        cardTypes
        remarks
        surcharges {
          chargeType
          price {
            currency
            binding
            net
            gross
          }
        }
      }
      errors {
        code
        type
        description
      }
      warnings {
        code
        type
        description
      }
    }
  }
}
`

// bookMutation books a quoted option.
const bookMutation = `
mutation ($input: HotelBookInput!, $settings: HotelSettingsInput) {
  hotelX {
    book( input: $input, settings: $settings) {
       booking {
        price {
          currency
          binding
          net
          gross
          exchange {
            currency
            rate
          }
          markups {
            channel
            currency
            binding
            net
            gross
            exchange {
              currency
              rate
            }
          }
        }
        status
        remarks
        reference {
          client
          supplier
          bookingID
          hotel
        }
        holder {
          name
          surname
        }
        hotel {
          creationDate
          checkIn
          checkOut
          hotelCode
          hotelName
          boardCode
          occupancies {
            id
            paxes {
              age
            }
          }
          rooms {
            code
            description
            occupancyRefId
            price {
              currency
              binding
              net
              gross
              exchange {
                currency
                rate
              }
              markups {
                channel
                currency
                binding
                net
                gross
                exchange {
                  currency
                  rate
                }
              }
            }
          }
        }
      }
      errors {
        code
        type
        description
      }
      warnings {
        code
        type
        description
      }
    }
  }
}
`

// cancelMutation cancels an existing booking.
const cancelMutation = `
mutation ($input: HotelCancelInput!, $settings:HotelSettingsInput) {
  hotelX {
    cancel(
      input: $input
      settings: $settings
    ) {
      auditData {
        transactions {
          request
          response
        }
      }
      errors {
        type
        code
        description
      }
      warnings {
        code
        description
      }
      cancellation {
        reference {
          client
          supplier
          hotel
          bookingID
        }
        cancelReference
        status
        price {
          currency
          binding
          net
          gross
          exchange {
            currency
            rate
          }
        }
        booking {
          paymentCard {
            code
            paymentCardData {
              type
            }
          }
          billingSupplierCode
          reference {
            client
            supplier
            hotel
            bookingID
          }
          holder {
            name
            surname
          }
          price {
            currency
            binding
            net
            gross
            exchange {
              currency
              rate
            }
          }
          hotel {
            creationDate
            checkIn
            checkOut
            hotelCode
            hotelName
            boardCode
            occupancies {
              id
              paxes {
                age
              }
            }
            rooms {
              code
              description
              occupancyRefId
              price {
                currency
                binding
                net
                gross
                exchange {
                  currency
                  rate
                }
              }
            }
          }
        }
      }
    }
  }
}
`

// bookingSearchQuery finds existing bookings by reference or date window.
const bookingSearchQuery = `
query ($criteria: HotelCriteriaBookingInput!, $settings: HotelSettingsInput) {
  hotelX {
    booking(
      criteria: $criteria,
      settings: $settings,
    ) {
      bookings {
        billingSupplierCode
        reference {
          client
          supplier
          hotel
          bookingID
        }
        holder {
          name
          surname
        }
        status
        hotel {
          start
          end
          bookingDate
          hotelCode
          hotelName
          boardCode
          occupancies {
            id
            paxes {
              age
            }
          }
          rooms {
            occupancyRefId
            code
            description
            price {
              currency
              net
              exchange {
                currency
                rate
              }
            }
          }
        }
        cancelPolicy {
          refundable
          cancelPenalties {
            hoursBefore
            penaltyType
            currency
            value
          }
        }
        remarks
        payable
      }
      errors {
        code
        type
        description
      }
      warnings {
        code
        type
        description
      }
    }
  }
}
`
